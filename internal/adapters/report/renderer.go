package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"

	"github.com/mikey/eml-analyzer/internal/core"
)

// Banner opens and closes every report
const Banner = "-------------------- EMAIL ANALYSIS REPORT --------------------"

const reportTemplate = `{{banner}}

From: {{.Analysis.Header.From}}
To: {{.Analysis.Header.To}}
Reply-To: {{.Analysis.Header.ReplyTo}}
Subject: {{.Analysis.Header.Subject}}
Date: {{.Analysis.Header.Date}}

{{if .Analysis.FromReplyMismatch}}Detected a mismatch between From and Reply-To

{{end}}{{with .Analysis.Hops}}Identified hops:

{{range .}}{{if .Classification.IsInternal}}Hop {{.Number}}: ({{.IP}} - Classification: {{.Classification}}) - No location data for internal IP addresses

{{else}}Hop {{.Number}}: ({{.IP}} - Classification: {{.Classification}}) - {{.Location.City}}, {{.Location.Region}}, {{.Location.Country}}
{{if .Foreign}}Detected hop was outside of {{$.HomeCountry}}
{{end}}
{{end}}{{end}}{{end}}{{with .Analysis.URLs}}Identified URLs:
{{range .}}
{{.URL}}
Detections: {{detections .}}
{{end}}
{{end}}{{with .Analysis.Phrases.Urgent}}Identified urgency keyphrases: {{join .}}

{{end}}{{with .Analysis.Phrases.Credential}}Identified credential keyphrases: {{join .}}

{{end}}{{with .Analysis.Phrases.Financial}}Identified financial keyphrases: {{join .}}

{{end}}{{with .Analysis.Attachments}}Identified attachments:

{{range .}}{{.Attachment.Filename}} ({{.Attachment.MIME}}, {{bytes .Attachment.SizeBytes}})
{{if .DangerousExtension}}Risky extension detected
{{end}}{{if .MIMEMismatch}}Extension-Mime mismatch detected
{{end}}
{{end}}{{end}}Risk rating: {{.Analysis.Verdict.Score}} ({{.Analysis.Verdict.Grade}})

{{banner}}`

// Renderer turns an analysis into the plain-text report
type Renderer struct {
	tmpl        *template.Template
	homeCountry string
}

// NewRenderer creates a new renderer. homeCountry is named in the foreign hop note.
func NewRenderer(homeCountry string) *Renderer {
	if homeCountry == "United States" {
		homeCountry = "the United States"
	}
	tmpl := template.Must(template.New("report").Funcs(template.FuncMap{
		"banner":     func() string { return Banner },
		"join":       func(s []string) string { return strings.Join(s, ", ") },
		"bytes":      func(n int64) string { return humanize.IBytes(uint64(max(n, 0))) },
		"detections": detections,
	}).Parse(reportTemplate))

	return &Renderer{
		tmpl:        tmpl,
		homeCountry: homeCountry,
	}
}

// Render returns the report text for analysis
func (r *Renderer) Render(analysis *core.Analysis) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Analysis    *core.Analysis
		HomeCountry string
	}{analysis, r.homeCountry}

	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

func detections(u core.URLFinding) string {
	if !u.Suspicious() {
		return "Nothing suspicious detected."
	}
	var tags []string
	if u.RawIP {
		tags = append(tags, "(Raw IP)")
	}
	if u.SuspiciousTLD {
		tags = append(tags, "(Suspicious TLD)")
	}
	if u.ExcessivelyLong {
		tags = append(tags, "(Excessively long)")
	}
	return strings.Join(tags, " ")
}
