package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpOverlay lists the global bindings and those of the mounted screen.
func (m model) helpOverlay() string {
	var sections []string

	if global := overlayHelpSection("Global", m.keys.GlobalHelpEntries()); global != "" {
		sections = append(sections, global)
	}
	if screenSection := overlayHelpSection(screenTitle(m.screenID), m.keys.HelpEntriesForScreen(m.screenID)); screenSection != "" {
		sections = append(sections, screenSection)
	}
	if m.logPath != "" {
		sections = append(sections, helpStyle.Render("Logs: "+abbreviatePath(m.logPath)))
	}
	if len(sections) == 0 {
		return ""
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return centered(m.width, m.bodyHeight(), helpBoxStyle.Render(content))
}

// overlayHelpSection builds a single section for the help overlay.
func overlayHelpSection(title string, entries []HelpEntry) string {
	if len(entries) == 0 {
		return ""
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		combos := make([]string, 0, len(entry.Combos))
		for _, combo := range entry.Combos {
			combos = append(combos, combo.Display())
		}
		line := lipgloss.JoinHorizontal(lipgloss.Left,
			helpKeyStyle.Render(strings.Join(combos, " / ")),
			" ",
			helpLabelStyle.Render(entry.Label),
		)
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		helpBoxTitle.Render(title),
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		"",
	)
}
