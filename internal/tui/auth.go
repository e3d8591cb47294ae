package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type authOption struct {
	label string
	hint  string
	path  string
}

var authOptions = []authOption{
	{label: "⌂  Sou uma empresa", hint: "Crie campanhas e encontre criadores", path: signupPath("brand")},
	{label: "☺  Sou um influenciador", hint: "Encontre campanhas e monetize seu conteúdo", path: signupPath("creator")},
	{label: "G  Continuar com o Google", hint: "Em breve"},
	{label: "?  Esqueceu a senha?", hint: "Receba um link para redefinir", path: pathForgotPassword},
}

// authStepScreen asks which kind of account to enter with.
type authStepScreen struct {
	cursor int
	width  int
	height int
}

func newAuthStepScreen() *authStepScreen { return &authStepScreen{} }

func (s *authStepScreen) Init() tea.Cmd { return nil }

func (s *authStepScreen) Typing() bool { return false }

func (s *authStepScreen) SetSize(width, height int) { s.width, s.height = width, height }

func (s *authStepScreen) Update(tea.Msg) tea.Cmd { return nil }

func (s *authStepScreen) HandleAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActNavigateUp:
		if idx, ok := wrapIndex(s.cursor, -1, len(authOptions)); ok {
			s.cursor = idx
		}
		return true, nil
	case ActNavigateDown:
		if idx, ok := wrapIndex(s.cursor, 1, len(authOptions)); ok {
			s.cursor = idx
		}
		return true, nil
	case ActConfirm:
		opt := authOptions[s.cursor]
		if opt.path == "" {
			return true, status("Login com o Google ainda não está disponível")
		}
		return true, navigate(opt.path)
	}
	return false, nil
}

func (s *authStepScreen) View() string {
	var b strings.Builder
	b.WriteString(logoStyle.Render("NEXA") + "\n\n")
	b.WriteString(titleStyle.Render("Como você quer entrar?") + "\n")
	b.WriteString(subtitleStyle.Render("Escolha o tipo de conta para acessar a plataforma") + "\n\n")

	rows := make([]string, 0, len(authOptions))
	for i, opt := range authOptions {
		style := optionStyle
		if i == s.cursor {
			style = optionActiveStyle
		}
		body := opt.label + "\n" + helpStyle.Render(opt.hint)
		rows = append(rows, style.Width(44).Render(body))
		if i == 1 {
			rows = append(rows, helpStyle.Render(strings.Repeat("─", 20)+" ou "+strings.Repeat("─", 20)))
		}
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n" + helpStyle.Render("↑/↓ escolher · enter continuar · esc voltar"))
	return centered(s.width, s.height, b.String())
}
