// tui/browse.go
// Package: tui
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/perfreport/internal/report"
	"github.com/mwiater/perfreport/internal/sink"
)

// model is the bubbletea model behind Browse.
type model struct {
	summaries  []report.RoundSummary
	table      table.Model
	showDetail bool
	width      int
}

func newModel(summaries []report.RoundSummary, locale sink.Locale) *model {
	header := sink.Header(locale)
	columns := make([]table.Column, len(header))
	for i, h := range header {
		width := lipgloss.Width(h) + 2
		for _, s := range summaries {
			if w := lipgloss.Width(sink.Row(s)[i]); w+2 > width {
				width = w + 2
			}
		}
		columns[i] = table.Column{Title: h, Width: width}
	}

	rows := make([]table.Row, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, table.Row(sink.Row(s)))
	}

	height := len(rows) + 1
	if height > 20 {
		height = 20
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("238")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("62"))

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithStyles(styles),
	)
	return &model{summaries: summaries, table: t}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.showDetail = !m.showDetail
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")).Render(m.table.View()))
	b.WriteString("\n")
	if m.showDetail {
		b.WriteString(m.detailView())
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(" (↑/↓ to move, enter for details, q to quit)"))
	return b.String()
}

// selected returns the summary under the cursor.
func (m *model) selected() (report.RoundSummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.summaries) {
		return report.RoundSummary{}, false
	}
	return m.summaries[i], true
}

func (m *model) detailView() string {
	s, ok := m.selected()
	if !ok {
		return ""
	}
	label := lipgloss.NewStyle().Bold(true).Width(18)
	lines := []string{
		headerStyle.Render(fmt.Sprintf("Round %s", s.RoundID)),
		label.Render("Executions") + fmt.Sprintf("%d (%d ok, %d failed)", s.TotalCount, s.SuccessCount, s.FailureCount),
		label.Render("Latency (ms)") + fmt.Sprintf("avg %.3f  min %.3f  max %.3f", s.AvgDurationMs, s.MinDurationMs, s.MaxDurationMs),
		label.Render("Elapsed (s)") + fmt.Sprintf("%.3f", s.TotalDuration),
		label.Render("Throughput (tps)") + fmt.Sprintf("%.3f", s.ThroughputTPS),
		label.Render("Success / error") + fmt.Sprintf("%.3f%% / %.3f%%", s.SuccessRatePct, s.ErrorRatePct),
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(strings.Join(lines, "\n"))
}

// Browse opens an interactive table of summaries and blocks until the user quits.
func Browse(summaries []report.RoundSummary, locale sink.Locale) error {
	if len(summaries) == 0 {
		return fmt.Errorf("no rounds to browse")
	}
	_, err := tea.NewProgram(newModel(summaries, locale)).Run()
	return err
}
