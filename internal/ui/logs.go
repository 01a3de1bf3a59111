package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JoseDFN/SpaceX-Explorer-App-sub001/internal/logtail"
)

// renderLogContent renders the tail of the application log.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	switch {
	case m.logErr != "":
		return styles.DangerText.Render("Could not read log: " + m.logErr)
	case m.logPath == "":
		return styles.MutedText.Render("Logging to file is not configured")
	case len(m.logEntries) == 0:
		return styles.MutedText.Render("No log entries yet in " + truncateMiddle(m.logPath, max(m.width-24, 20)))
	}

	lines := make([]string, len(m.logEntries))
	for i, e := range m.logEntries {
		lines[i] = m.renderLogEntry(e, styles)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLogEntry(e logtail.Entry, styles Styles) string {
	if e.Level == "" && e.Time.IsZero() {
		return styles.MutedText.Render(e.Message)
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
		b.WriteString(" ")
	}
	if e.Level != "" {
		b.WriteString(levelStyle(e.Level, styles).Bold(true).Render(padRight(e.Level, 5)))
		b.WriteString(" ")
	}
	b.WriteString(styles.Text.Render(e.Message))
	if e.Error != "" {
		b.WriteString(" ")
		b.WriteString(styles.DangerText.Render(e.Error))
	}
	for _, f := range e.Fields {
		b.WriteString(" ")
		b.WriteString(styles.AccentText.Render(f.Key + "="))
		b.WriteString(styles.MutedText.Render(f.Value))
	}
	return b.String()
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "INFO":
		return styles.SuccessText
	case "WARN":
		return styles.WarningText
	case "ERROR", "FATAL", "PANIC":
		return styles.DangerText
	case "DEBUG", "TRACE":
		return styles.InfoText
	default:
		return styles.Text
	}
}
