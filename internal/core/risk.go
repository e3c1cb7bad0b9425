package core

// Weights is the per-category multiplier of the risk model
type Weights struct {
	SuspiciousTLD      int
	RawIPDomain        int
	LongURL            int
	UrgentLanguage     int
	CredentialLanguage int
	FinancialLanguage  int
	DangerousExtension int
	MIMEMismatch       int
	ForeignHop         int
	FromReplyMismatch  int
}

// Thresholds are the minimum scores of the Moderate and High grades
type Thresholds struct {
	Moderate int
	High     int
}

// DefaultWeights are the shipped weights; values are a judgement call and can be tuned
var DefaultWeights = Weights{
	SuspiciousTLD:      3,
	RawIPDomain:        5,
	LongURL:            1,
	UrgentLanguage:     2,
	CredentialLanguage: 4,
	FinancialLanguage:  5,
	DangerousExtension: 5,
	MIMEMismatch:       10,
	ForeignHop:         5,
	FromReplyMismatch:  6,
}

// DefaultThresholds grade 8..15 as Moderate and 16 and above as High
var DefaultThresholds = Thresholds{
	Moderate: 8,
	High:     16,
}

// RiskModel turns detection counts into a verdict
type RiskModel struct {
	weights    Weights
	thresholds Thresholds
}

// NewRiskModel creates a risk model with the given weights and thresholds
func NewRiskModel(weights Weights, thresholds Thresholds) *RiskModel {
	return &RiskModel{
		weights:    weights,
		thresholds: thresholds,
	}
}

// Score is the dot product of counts and weights
func (m *RiskModel) Score(c DetectionCounts) int {
	w := m.weights
	return c.SuspiciousTLD*w.SuspiciousTLD +
		c.RawIPDomain*w.RawIPDomain +
		c.LongURL*w.LongURL +
		c.UrgentLanguage*w.UrgentLanguage +
		c.CredentialLanguage*w.CredentialLanguage +
		c.FinancialLanguage*w.FinancialLanguage +
		c.DangerousExtension*w.DangerousExtension +
		c.MIMEMismatch*w.MIMEMismatch +
		c.ForeignHop*w.ForeignHop +
		c.FromReplyMismatch*w.FromReplyMismatch
}

// Grade maps a score onto the three severity tiers
func (m *RiskModel) Grade(score int) Grade {
	switch {
	case score >= m.thresholds.High:
		return GradeHigh
	case score >= m.thresholds.Moderate:
		return GradeModerate
	default:
		return GradeLow
	}
}

// Evaluate scores and grades counts
func (m *RiskModel) Evaluate(c DetectionCounts) RiskVerdict {
	score := m.Score(c)
	return RiskVerdict{
		Score: score,
		Grade: m.Grade(score),
	}
}
