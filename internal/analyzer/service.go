package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikey/eml-analyzer/internal/core"
	"github.com/mikey/eml-analyzer/internal/heuristics"
)

const (
	// DefaultHomeCountry is the country whose relays are not counted as foreign
	DefaultHomeCountry = "United States"

	// DefaultLookupTimeout bounds a single geolocation lookup
	DefaultLookupTimeout = 5 * time.Second
)

// Options are the fixed reference values used by the detectors
type Options struct {
	HomeCountry    string
	URLLengthLimit int
	LookupTimeout  time.Duration
}

// Service runs every detector over a message and grades the result
type Service struct {
	geo     core.GeoLocator
	risk    *core.RiskModel
	logger  *zap.Logger
	options Options
}

// NewService creates a new analysis service
func NewService(geo core.GeoLocator, risk *core.RiskModel, logger *zap.Logger, options Options) *Service {
	if options.HomeCountry == "" {
		options.HomeCountry = DefaultHomeCountry
	}
	if options.LookupTimeout <= 0 {
		options.LookupTimeout = DefaultLookupTimeout
	}
	if options.URLLengthLimit <= 0 {
		options.URLLengthLimit = heuristics.DefaultURLLengthLimit
	}

	return &Service{
		geo:     geo,
		risk:    risk,
		logger:  logger,
		options: options,
	}
}

// Analyze produces the findings and verdict for one message. It never fails:
// every detector degrades to "no finding" on bad input.
func (s *Service) Analyze(ctx context.Context, msg *core.Message) *core.Analysis {
	ips := heuristics.ExtractHopIPs(msg.Header.ReceivedHops)
	classes := classifyHops(ips)
	locations := s.locateHops(ctx, ips, classes)
	hops := hopFindings(ips, classes, locations, s.options.HomeCountry)

	urls := urlFindings(msg.Body, s.options.URLLengthLimit)
	phrases := core.PhraseMatches{
		Urgent:     heuristics.UrgentLanguage.Match(msg.Body),
		Credential: heuristics.CredentialLanguage.Match(msg.Body),
		Financial:  heuristics.FinancialLanguage.Match(msg.Body),
	}
	attachments := attachmentFindings(msg.Attachments)
	mismatch := heuristics.HasFromReplyToMismatch(msg.Header.From, msg.Header.ReplyTo)

	counts := countDetections(hops, urls, phrases, attachments, mismatch)
	verdict := s.risk.Evaluate(counts)

	s.logger.Debug("Message analyzed",
		zap.String("source", msg.Source),
		zap.Int("hops", len(hops)),
		zap.Int("urls", len(urls)),
		zap.Int("attachments", len(attachments)),
		zap.Int("score", verdict.Score),
		zap.String("grade", verdict.Grade.String()))

	return &core.Analysis{
		ID:                uuid.NewString(),
		Source:            msg.Source,
		AnalyzedAt:        time.Now(),
		Header:            msg.Header,
		FromReplyMismatch: mismatch,
		Hops:              hops,
		URLs:              urls,
		Phrases:           phrases,
		Attachments:       attachments,
		Counts:            counts,
		Verdict:           verdict,
	}
}

// locateHops returns one location per ip, in order. Only public addresses are
// looked up; anything else, and any failed lookup, gets the placeholder.
func (s *Service) locateHops(ctx context.Context, ips []string, classes []core.HopClassification) []core.GeoLocation {
	locations := make([]core.GeoLocation, len(ips))
	for i, ip := range ips {
		locations[i] = core.PlaceholderLocation(ip)
		if classes[i] != core.HopPublic || s.geo == nil {
			continue
		}

		lookupCtx, cancel := context.WithTimeout(ctx, s.options.LookupTimeout)
		loc, err := s.geo.Lookup(lookupCtx, ip)
		cancel()
		if err != nil {
			s.logger.Debug("Geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
			continue
		}
		loc.IP = ip
		locations[i] = loc
	}
	return locations
}

func classifyHops(ips []string) []core.HopClassification {
	classes := make([]core.HopClassification, len(ips))
	for i, ip := range ips {
		classes[i] = heuristics.ClassifyHop(ip)
	}
	return classes
}

// hopFindings lists hops oldest first. Invalid addresses are dropped but
// still consume a hop number.
func hopFindings(ips []string, classes []core.HopClassification, locations []core.GeoLocation, homeCountry string) []core.HopFinding {
	var hops []core.HopFinding
	for n := 1; n <= len(ips); n++ {
		i := len(ips) - n
		if classes[i] == core.HopInvalid {
			continue
		}
		hops = append(hops, core.HopFinding{
			Number:         n,
			IP:             ips[i],
			Classification: classes[i],
			Location:       locations[i],
			Foreign:        classes[i] == core.HopPublic && locations[i].Country != homeCountry,
		})
	}
	return hops
}

func urlFindings(body string, lengthLimit int) []core.URLFinding {
	var findings []core.URLFinding
	for _, u := range heuristics.ExtractURLs(body) {
		findings = append(findings, core.URLFinding{
			URL:             u,
			Domain:          heuristics.RegistrableDomain(u),
			RawIP:           heuristics.IsRawIP(u),
			SuspiciousTLD:   heuristics.HasSuspiciousTLD(u),
			ExcessivelyLong: heuristics.IsExcessivelyLong(u, lengthLimit),
		})
	}
	return findings
}

func attachmentFindings(attachments []core.AttachmentInfo) []core.AttachmentFinding {
	var findings []core.AttachmentFinding
	for _, a := range attachments {
		findings = append(findings, core.AttachmentFinding{
			Attachment:         a,
			DangerousExtension: heuristics.HasDangerousExtension(a.Extension),
			MIMEMismatch:       heuristics.HasMismatchedMIME(a.Extension, a.MIME),
		})
	}
	return findings
}

func countDetections(
	hops []core.HopFinding,
	urls []core.URLFinding,
	phrases core.PhraseMatches,
	attachments []core.AttachmentFinding,
	fromReplyMismatch bool,
) core.DetectionCounts {
	var c core.DetectionCounts
	for _, h := range hops {
		if h.Foreign {
			c.ForeignHop++
		}
	}
	for _, u := range urls {
		if u.RawIP {
			c.RawIPDomain++
		}
		if u.SuspiciousTLD {
			c.SuspiciousTLD++
		}
		if u.ExcessivelyLong {
			c.LongURL++
		}
	}
	c.UrgentLanguage = len(phrases.Urgent)
	c.CredentialLanguage = len(phrases.Credential)
	c.FinancialLanguage = len(phrases.Financial)
	for _, a := range attachments {
		if a.DangerousExtension {
			c.DangerousExtension++
		}
		if a.MIMEMismatch {
			c.MIMEMismatch++
		}
	}
	if fromReplyMismatch {
		c.FromReplyMismatch = 1
	}
	return c
}
