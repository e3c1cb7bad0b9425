package report

import (
	"io"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/mikey/eml-analyzer/internal/core"
	"github.com/mikey/eml-analyzer/internal/utils"
)

const maxErrorWidth = 60

// WriteSummary prints one row per processed message
func WriteSummary(w io.Writer, results []core.BatchResult, tp *utils.TextProcessor) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Score", "Grade", "Report"})
	table.SetAutoWrapText(false)

	for _, r := range results {
		file := filepath.Base(r.Source)
		if r.Err != nil {
			score := "-"
			if r.Verdict != nil {
				score = strconv.Itoa(r.Verdict.Score)
			}
			table.Append([]string{file, score, "ERROR", tp.Truncate(r.Err.Error(), maxErrorWidth)})
			continue
		}
		table.Append([]string{file, strconv.Itoa(r.Verdict.Score), r.Verdict.Grade.String(), r.ReportPath})
	}

	table.SetFooter([]string{"", "", "Messages", strconv.Itoa(len(results))})
	table.Render()
}
