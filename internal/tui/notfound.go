package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// notFoundScreen is mounted for paths outside the route table.
type notFoundScreen struct {
	path   string
	width  int
	height int
}

func newNotFoundScreen(path string) *notFoundScreen {
	return &notFoundScreen{path: path}
}

func (s *notFoundScreen) Init() tea.Cmd { return nil }
func (s *notFoundScreen) Update(tea.Msg) tea.Cmd { return nil }
func (s *notFoundScreen) Typing() bool { return false }
func (s *notFoundScreen) SetSize(width, height int) { s.width, s.height = width, height }

func (s *notFoundScreen) HandleAction(act Action) (bool, tea.Cmd) {
	if act == ActConfirm {
		return true, replaceRoute(pathLanding)
	}
	return false, nil
}

func (s *notFoundScreen) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("404") + "\n\n")
	b.WriteString("Página não encontrada\n")
	b.WriteString(subtitleStyle.Render(truncateText(s.path, 40)) + "\n\n")
	b.WriteString(linkStyle.Render("Voltar ao início") + helpStyle.Render(" (enter)"))
	return centered(s.width, s.height, b.String())
}

// notFoundView is the shell fallback for nav entries without a view.
type notFoundView struct {
	width  int
	height int
}

func newNotFoundView() view { return &notFoundView{} }

func (v *notFoundView) HandleAction(Action) (bool, tea.Cmd) { return false, nil }
func (v *notFoundView) Update(tea.Msg) tea.Cmd { return nil }
func (v *notFoundView) Typing() bool { return false }
func (v *notFoundView) SetSize(width, height int) { v.width, v.height = width, height }

func (v *notFoundView) View() string {
	body := titleStyle.Render("Not Found") + "\n\n" +
		subtitleStyle.Render("Esta seção ainda não está disponível.")
	return centered(v.width, v.height, body)
}
