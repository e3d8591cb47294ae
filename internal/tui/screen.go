package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// view is a piece of UI that receives keymap actions first and raw messages
// second. Implementations are pointers and keep their own state.
type view interface {
	HandleAction(act Action) (bool, tea.Cmd)
	Update(msg tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	// Typing reports whether a text field has focus, which suppresses
	// single-letter shortcuts.
	Typing() bool
}

// screen is a view mounted by a route.
type screen interface {
	view
	Init() tea.Cmd
}

// renderMarkdown renders md with the standard glamour style matching the
// resolved theme. Rendering failures fall back to the raw text.
func renderMarkdown(md string, width int, dark bool) string {
	style := "light"
	if dark {
		style = "dark"
	}
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// newForm applies the shared form settings. The form is embedded, so
// completion is observed through its State rather than a quit command.
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).
		WithShowHelp(true).
		WithShowErrors(true).
		WithTheme(huh.ThemeCharm())
	form.SubmitCmd = nil
	form.CancelCmd = nil
	return form
}

// updateForm forwards msg to form and returns the updated form.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

func formActive(form *huh.Form) bool {
	return form != nil && form.State == huh.StateNormal
}

func centered(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func formWidth(width int) int {
	switch {
	case width <= 0:
		return 60
	case width < 24:
		return 20
	case width < 50:
		return width - 4
	case width > 72:
		return 64
	default:
		return width - 8
	}
}
