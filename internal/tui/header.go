package tui

import (
	"github.com/SimoKiihamaki/nexa/internal/store"
	"github.com/SimoKiihamaki/nexa/internal/utils"
)

func themeLabel(t store.Theme) string {
	switch t {
	case store.ThemeDark:
		return "☾ escuro"
	case store.ThemeSystem:
		return "◐ sistema"
	default:
		return "☀ claro"
	}
}

func signedInLabel(s store.State) string {
	u := s.Auth.User
	if u == nil {
		return "Visitante"
	}
	return utils.FirstNonEmpty(u.Name, u.Email, "Visitante")
}

// renderHeader draws the bar above a role shell. The menu hint is only shown
// where the panel is an overlay.
func renderHeader(s store.State, title string, width int, narrow bool) string {
	left := []segment{
		{text: "NEXA", style: logoStyle},
		{text: title, style: headerRoleStyle},
	}
	if narrow {
		left = append(left, segment{text: "m menu", style: headerMutedStyle})
	}
	right := []segment{
		{text: themeLabel(s.User.Preferences.Theme), style: headerMutedStyle},
		{text: signedInLabel(s), style: headerUserStyle},
	}
	return renderBar(width, left, right)
}
