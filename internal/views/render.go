package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	SchedulePane string
	Notification string
	InputLine    string
	StatusLine   string
	StatusError  bool
	Footer       string
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	conflictStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
)

func RenderApp(data AppData) string {
	lines := []string{
		headerStyle.Render(data.Header),
		panelStyle.Width(72).Render(data.SchedulePane),
	}
	if data.Notification != "" {
		lines = append(lines, data.Notification)
	}
	if data.InputLine != "" {
		lines = append(lines, data.InputLine)
	}
	if data.StatusLine != "" {
		if data.StatusError {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

type TaskRow struct {
	Text      string
	Completed bool
}

// RenderSchedule numbers rows from 1; an empty list renders the empty-day
// placeholder.
func RenderSchedule(title string, rows []TaskRow) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString("No tasks scheduled for the day.")
		return b.String()
	}
	fmt.Fprintf(&b, "Total Tasks: %d\n", len(rows))
	for i, row := range rows {
		line := fmt.Sprintf("%d. %s", i+1, row.Text)
		if row.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

func RenderConflict(message, existing string) string {
	body := fmt.Sprintf("CONFLICT DETECTED\n%s\nConflicting task:\n  %s", message, existing)
	return conflictStyle.Render(body)
}

func RenderMarkdown(md, style string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if style == "" {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
