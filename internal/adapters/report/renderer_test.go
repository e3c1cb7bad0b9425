package report

import (
	"strings"
	"testing"

	"github.com/mikey/eml-analyzer/internal/core"
)

func sampleAnalysis() *core.Analysis {
	return &core.Analysis{
		Source: "emails/invoice.eml",
		Header: core.HeaderInfo{
			From:    core.Some("billing@x.com"),
			To:      core.Some("victim@example.com"),
			ReplyTo: core.Some("payments@y.com"),
			Subject: core.Some("Overdue invoice"),
		},
		FromReplyMismatch: true,
		Hops: []core.HopFinding{
			{
				Number:         1,
				IP:             "1.1.1.1",
				Classification: core.HopPublic,
				Location:       core.GeoLocation{IP: "1.1.1.1", City: "Sydney", Region: "New South Wales", Country: "Australia"},
				Foreign:        true,
			},
			{
				Number:         3,
				IP:             "10.0.0.5",
				Classification: core.HopPrivate,
				Location:       core.PlaceholderLocation("10.0.0.5"),
			},
		},
		URLs: []core.URLFinding{
			{URL: "http://8.8.8.8/login", RawIP: true},
			{URL: "https://example.com"},
		},
		Phrases: core.PhraseMatches{
			Financial: []string{"gift card", "send payment"},
		},
		Attachments: []core.AttachmentFinding{
			{
				Attachment:         core.AttachmentInfo{Filename: "invoice.exe", Extension: ".exe", MIME: "application/pdf", SizeBytes: 2048},
				DangerousExtension: true,
				MIMEMismatch:       true,
			},
		},
		Verdict: core.RiskVerdict{Score: 31, Grade: core.GradeHigh},
	}
}

func TestRenderOrder(t *testing.T) {
	text, err := NewRenderer("United States").Render(sampleAnalysis())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	ordered := []string{
		Banner,
		"From: billing@x.com",
		"To: victim@example.com",
		"Reply-To: payments@y.com",
		"Subject: Overdue invoice",
		"Date: N/A",
		"Detected a mismatch between From and Reply-To",
		"Identified hops:",
		"Hop 1: (1.1.1.1 - Classification: Public) - Sydney, New South Wales, Australia",
		"Detected hop was outside of the United States",
		"Hop 3: (10.0.0.5 - Classification: Private) - No location data for internal IP addresses",
		"Identified URLs:",
		"http://8.8.8.8/login\nDetections: (Raw IP)",
		"https://example.com\nDetections: Nothing suspicious detected.",
		"Identified financial keyphrases: gift card, send payment",
		"Identified attachments:",
		"invoice.exe (application/pdf, 2.0 KiB)",
		"Risky extension detected",
		"Extension-Mime mismatch detected",
		"Risk rating: 31 (HIGH RISK)",
	}

	pos := 0
	for _, line := range ordered {
		idx := strings.Index(text[pos:], line)
		if idx < 0 {
			t.Fatalf("expected %q after offset %d in report:\n%s", line, pos, text)
		}
		pos += idx + len(line)
	}
	if !strings.HasSuffix(text, Banner) {
		t.Errorf("expected report to end with the banner")
	}
}

func TestRenderMinimal(t *testing.T) {
	analysis := &core.Analysis{Verdict: core.RiskVerdict{Score: 0, Grade: core.GradeLow}}

	text, err := NewRenderer("United States").Render(analysis)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	for _, absent := range []string{"mismatch", "Identified hops", "Identified URLs", "keyphrases", "Identified attachments"} {
		if strings.Contains(text, absent) {
			t.Errorf("did not expect %q in report:\n%s", absent, text)
		}
	}
	if !strings.Contains(text, "From: N/A") || !strings.Contains(text, "Risk rating: 0 (LOW RISK)") {
		t.Errorf("unexpected report:\n%s", text)
	}
}

func TestRenderCombinedDetections(t *testing.T) {
	analysis := &core.Analysis{
		URLs: []core.URLFinding{{URL: "http://x.xyz/" + strings.Repeat("a", 200), SuspiciousTLD: true, ExcessivelyLong: true}},
	}

	text, err := NewRenderer("Canada").Render(analysis)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(text, "Detections: (Suspicious TLD) (Excessively long)") {
		t.Errorf("unexpected detections line:\n%s", text)
	}
}
