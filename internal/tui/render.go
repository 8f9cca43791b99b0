// tui/render.go
// Package: tui
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/perfreport/internal/report"
	"github.com/mwiater/perfreport/internal/sink"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalsStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// RenderTable renders summaries, followed by a totals row, as a bordered terminal table.
func RenderTable(summaries []report.RoundSummary, totals report.RoundSummary, locale sink.Locale) string {
	rows := make([][]string, 0, len(summaries)+1)
	for _, s := range summaries {
		rows = append(rows, sink.Row(s))
	}
	rows = append(rows, sink.Row(totals))
	last := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(sink.Header(locale)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == last:
				return totalsStyle
			case col == 10 && summaries[row].ErrorRatePct > 0:
				return errorStyle.Padding(0, 1)
			default:
				return cellStyle
			}
		})
	return t.String()
}
