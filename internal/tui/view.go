package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	body := m.screen.View()
	if m.showHelp {
		body = m.helpOverlay()
	}
	bar := renderStatusBar(m)
	if m.height <= 0 {
		if bar == "" {
			return body
		}
		return body + "\n" + bar
	}
	body = lipgloss.NewStyle().MaxHeight(m.bodyHeight()).Render(body)
	pad := m.bodyHeight() - lipgloss.Height(body)
	if pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + bar
}

func renderStatusBar(m model) string {
	message, style := statusBarMessage(m)
	if message == "" {
		return helpStyle.Render(m.hint())
	}
	return style.Render(message)
}

func (m model) hint() string {
	return "? atalhos · esc voltar · ctrl+t tema · q sair"
}

func statusBarMessage(m model) (string, lipgloss.Style) {
	if m.toast == nil {
		return "", lipgloss.NewStyle()
	}
	if m.toast.isErr {
		return m.toast.message, statusErrorStyle
	}
	return m.toast.message, classifyStatusStyle(m.toast.message)
}

func classifyStatusStyle(text string) lipgloss.Style {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "erro"),
		strings.Contains(lower, "falh"),
		strings.Contains(lower, "inválid"):
		return statusErrorStyle
	case strings.Contains(lower, "offline"),
		strings.Contains(lower, "não configurado"):
		return statusWarnStyle
	case strings.Contains(lower, "salv"),
		strings.Contains(lower, "copiad"),
		strings.Contains(lower, "atualizad"),
		strings.Contains(lower, "enviad"):
		return statusSuccessStyle
	default:
		return statusInfoStyle
	}
}
