package core

import (
	"time"
)

// NotAvailable is printed wherever a value could not be determined
const NotAvailable = "N/A"

// OptionalString is a header value that may be absent from the message
type OptionalString struct {
	value   string
	present bool
}

// Some wraps a present value
func Some(value string) OptionalString {
	return OptionalString{value: value, present: true}
}

// None returns an absent value
func None() OptionalString {
	return OptionalString{}
}

// Get returns the value and whether it was present
func (o OptionalString) Get() (string, bool) {
	return o.value, o.present
}

// IsPresent reports whether the header existed
func (o OptionalString) IsPresent() bool {
	return o.present
}

// String renders the value, or N/A when absent
func (o OptionalString) String() string {
	if !o.present {
		return NotAvailable
	}
	return o.value
}

// HeaderInfo holds the header fields used by the analysis
type HeaderInfo struct {
	From    OptionalString
	To      OptionalString
	ReplyTo OptionalString
	Subject OptionalString
	Date    OptionalString

	// ReceivedHops is in source order, so the most recent relay comes first
	ReceivedHops []string
}

// AttachmentInfo describes one named attachment part
type AttachmentInfo struct {
	Filename  string
	Extension string
	MIME      string
	SizeBytes int64
}

// Message is the extracted model of one email file
type Message struct {
	Source      string
	Header      HeaderInfo
	Body        string
	Attachments []AttachmentInfo
}

// HopClassification is the address class of a relay IP
type HopClassification int

const (
	HopInvalid HopClassification = iota
	HopLoopback
	HopPrivate
	HopPublic
)

func (c HopClassification) String() string {
	switch c {
	case HopLoopback:
		return "Loopback"
	case HopPrivate:
		return "Private"
	case HopPublic:
		return "Public"
	default:
		return "Invalid"
	}
}

// IsInternal reports whether the address never leaves a local network
func (c HopClassification) IsInternal() bool {
	return c == HopLoopback || c == HopPrivate
}

// GeoLocation is the resolved location of a hop IP
type GeoLocation struct {
	IP      string
	City    string
	Region  string
	Country string
}

// PlaceholderLocation is used whenever a lookup is skipped or fails
func PlaceholderLocation(ip string) GeoLocation {
	return GeoLocation{
		IP:      ip,
		City:    NotAvailable,
		Region:  NotAvailable,
		Country: NotAvailable,
	}
}

// DetectionCounts accumulates heuristic hits for a single message
type DetectionCounts struct {
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

// Grade is the severity tier of a verdict
type Grade int

const (
	GradeLow Grade = iota
	GradeModerate
	GradeHigh
)

func (g Grade) String() string {
	switch g {
	case GradeHigh:
		return "HIGH RISK"
	case GradeModerate:
		return "MODERATE RISK"
	default:
		return "LOW RISK"
	}
}

// RiskVerdict is the final score and grade of a message
type RiskVerdict struct {
	Score int
	Grade Grade
}

// HopFinding is one hop in chronological order
type HopFinding struct {
	Number         int
	IP             string
	Classification HopClassification
	Location       GeoLocation
	Foreign        bool
}

// URLFinding is one URL discovered in the body
type URLFinding struct {
	URL             string
	Domain          string
	RawIP           bool
	SuspiciousTLD   bool
	ExcessivelyLong bool
}

// Suspicious reports whether any URL rule fired
func (u URLFinding) Suspicious() bool {
	return u.RawIP || u.SuspiciousTLD || u.ExcessivelyLong
}

// PhraseMatches holds the distinct vocabulary hits per category
type PhraseMatches struct {
	Urgent     []string
	Credential []string
	Financial  []string
}

// AttachmentFinding is an attachment and the rules it tripped
type AttachmentFinding struct {
	Attachment         AttachmentInfo
	DangerousExtension bool
	MIMEMismatch       bool
}

// Analysis is everything the report renderer needs for one message
type Analysis struct {
	ID                string
	Source            string
	AnalyzedAt        time.Time
	Header            HeaderInfo
	FromReplyMismatch bool
	Hops              []HopFinding
	URLs              []URLFinding
	Phrases           PhraseMatches
	Attachments       []AttachmentFinding
	Counts            DetectionCounts
	Verdict           RiskVerdict
}

// BatchResult is the outcome of one file in a batch run
type BatchResult struct {
	Source     string
	ReportPath string
	Verdict    *RiskVerdict
	Err        error
}
