package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lander/internal/state"
)

// renderHeader renders the top status bar: logo, backend, phase badge and
// the age of the last applied status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("lander", styles.Logo)}

	if !compact && m.baseURL != "" {
		parts = append(parts,
			bg.Render("Tower:", styles.MutedText)+bg.Space()+
				bg.Render(truncateMiddle(m.baseURL, 40), styles.Text),
		)
	}

	if m.state.Loading {
		parts = append(parts, bg.Render(m.spinner.View()+" loading", styles.WarningText))
	} else {
		parts = append(parts,
			bg.Render("Airports:", styles.MutedText)+bg.Space()+
				bg.Render(itoa(len(m.state.Airports)), styles.Text),
		)
	}

	switch {
	case m.lastErr != nil:
		parts = append(parts, bg.Render("● failing", styles.DangerText))
	case !m.state.LastPoll.IsZero() || len(m.state.Airports) > 0:
		parts = append(parts, bg.Render("● ok", styles.SuccessText))
	}

	phase := m.state.Phase()
	parts = append(parts, styles.PhaseStyle(phase).Render(phaseLabel(phase)))

	if m.state.Selected != "" {
		if ts := m.formatLastPoll(); ts != "" {
			parts = append(parts, bg.Render(ts, styles.MutedText))
		}
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// formatLastPoll renders the time of the last applied status with its age.
func (m Model) formatLastPoll() string {
	if m.state.LastPoll.IsZero() {
		return ""
	}
	age := m.now().Sub(m.state.LastPoll)
	return m.state.LastPoll.Format("15:04:05") + " (" + humanizeDuration(age) + ")"
}

// renderFooter renders the short key help bar.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		if b.Enabled() {
			h := b.Help()
			parts = append(parts, bg.Render(h.Key, keyStyle)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
		}
	}
	if m.showLogs && m.logPath != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.logPath, 40), styles.FaintText))
	}

	return styles.Footer.Width(m.width).Render(bg.Join(parts, bg.Spaces(3)))
}

// phaseLabel is the header badge text for p.
func phaseLabel(p state.Phase) string {
	return strings.ToUpper(p.String())
}
