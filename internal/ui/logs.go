package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lander/internal/logtail"
)

// renderLogs renders the tail of the operator log, newest last.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Operator Log"))
	b.WriteString("\n")

	switch {
	case m.logPath == "":
		b.WriteString(styles.MutedText.Render("Logging to a file is disabled."))
		b.WriteString("\n")
		return b.String()
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render("Unable to read log: " + m.logErr.Error()))
		b.WriteString("\n")
		return b.String()
	case len(m.logEntries) == 0:
		b.WriteString(styles.MutedText.Render("No log entries yet."))
		b.WriteString("\n")
		return b.String()
	}

	entries := m.logEntries
	// header, title, footer and spacing
	if avail := m.height - 4; avail > 0 && len(entries) > avail {
		entries = entries[len(entries)-avail:]
	}
	for _, entry := range entries {
		b.WriteString(m.renderLogEntry(entry, styles))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderLogEntry(entry logtail.Entry, styles Styles) string {
	if entry.Level == "" && entry.Time.IsZero() {
		return styles.Text.Render(truncate(entry.Raw, m.width))
	}

	var parts []string
	if !entry.Time.IsZero() {
		parts = append(parts, styles.FaintText.Render(entry.Time.Local().Format("15:04:05")))
	}
	level := strings.ToUpper(entry.Level)
	if level == "" {
		level = "INFO"
	}
	parts = append(parts, levelStyle(level, styles).Bold(true).Render(padRight(level, 5)))
	parts = append(parts, styles.Text.Render(entry.Message))
	if attrs := formatAttrs(entry.Attrs); attrs != "" {
		parts = append(parts, styles.MutedText.Render(attrs))
	}
	return strings.Join(parts, " ")
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "INFO":
		return styles.SuccessText
	case "WARN":
		return styles.WarningText
	case "ERROR":
		return styles.DangerText
	case "DEBUG":
		return styles.InfoText
	default:
		return styles.Text
	}
}

// formatAttrs renders attributes as sorted key=value pairs.
func formatAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+attrs[k])
	}
	return strings.Join(pairs, " ")
}
