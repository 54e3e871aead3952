package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const emptyDirectoryHint = "No airports available. Press r to reload."

// renderMain renders the airport picker, the land button and the message
// line.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	indent := strings.Repeat(" ", LayoutListIndent)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString(styles.Text.Bold(true).Render("Select Airport to Land:"))
	b.WriteString("\n\n")

	switch {
	case m.state.Loading:
		b.WriteString(indent)
		b.WriteString(styles.WarningText.Render(m.spinner.View() + " " + m.state.LoadingMessage))
		b.WriteString("\n")
	case len(m.state.Airports) == 0:
		b.WriteString(indent)
		b.WriteString(styles.MutedText.Render(emptyDirectoryHint))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderAirportList(styles, indent))
	}

	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString(m.renderLandButton(styles))
	b.WriteString("\n\n")

	if msg := m.state.Display(m.now()); msg.Text != "" {
		b.WriteString(indent)
		b.WriteString(styles.ToneStyle(msg.Tone).Render(msg.Text))
		b.WriteString("\n")
	}

	return b.String()
}

// renderAirportList renders one row per airport. The cursor row is
// highlighted; the selected airport carries a marker and its own style.
func (m Model) renderAirportList(styles Styles, indent string) string {
	width := m.listWidth()

	var b strings.Builder
	for i, airport := range m.state.Airports {
		marker := "  "
		if airport.ID == m.state.Selected {
			marker = "● "
		}
		prefix := "   "
		if i < 9 {
			prefix = itoa(i+1) + ". "
		}
		row := marker + prefix + truncate(airport.DisplayName(), width-len(prefix)-2)

		style := styles.Text
		switch {
		case airport.ID == m.state.Selected:
			style = styles.Selected
		case i == m.cursor:
			style = styles.Cursor
		}
		b.WriteString(indent)
		b.WriteString(style.Width(width).Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

// renderLandButton renders the land button, dimmed unless landing is
// currently allowed.
func (m Model) renderLandButton(styles Styles) string {
	label := "Land"
	if m.state.Landing {
		label = "Landing..."
	}
	if m.state.CanLand() {
		return styles.ButtonEnabled.Render(label)
	}
	return styles.ButtonDisabled.Render(label)
}

// listWidth is the row width of the airport list.
func (m Model) listWidth() int {
	w := m.width - 2*LayoutListIndent
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// centered places content in the middle of the terminal.
func (m Model) centered(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
