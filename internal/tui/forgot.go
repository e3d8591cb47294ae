package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/forms"
)

const forgotSentMessage = "Um email foi enviado para você com um link para redefinir sua senha. Verifique sua caixa de entrada (e pasta de spam)."

type forgotScreen struct {
	d          *deps
	rec        forms.ForgotPassword
	form       *huh.Form
	submitting bool
	submitted  bool
	serverNote string
	errMsg     string
	width      int
	height     int
}

func newForgotScreen(d *deps) *forgotScreen {
	s := &forgotScreen{d: d}
	s.form = s.buildForm()
	return s
}

func (s *forgotScreen) buildForm() *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewInput().Key("email").Title("Email").
			Placeholder("email@exemplo.com").
			Value(&s.rec.Email).
			Validate(forms.Email),
	)).WithWidth(formWidth(s.width))
}

func (s *forgotScreen) Init() tea.Cmd { return s.form.Init() }

func (s *forgotScreen) Typing() bool {
	return !s.submitted && !s.submitting && formActive(s.form)
}

func (s *forgotScreen) SetSize(width, height int) {
	s.width, s.height = width, height
	s.form = s.form.WithWidth(formWidth(width))
}

func (s *forgotScreen) HandleAction(act Action) (bool, tea.Cmd) {
	if act == ActConfirm && s.submitted {
		return true, navigate(pathAuth)
	}
	return false, nil
}

func (s *forgotScreen) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(forgotResultMsg); ok {
		if !s.submitting {
			return nil
		}
		s.submitting = false
		if res.err != nil {
			s.errMsg = authapi.Message(res.err)
			s.form = s.buildForm()
			return s.form.Init()
		}
		s.submitted = true
		s.serverNote = res.message
		return nil
	}
	if s.submitted || s.submitting {
		return nil
	}

	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	if s.form.State != huh.StateCompleted {
		return cmd
	}
	if err := s.rec.Validate(); err != nil {
		s.errMsg = authapi.Message(err)
		s.form = s.buildForm()
		return s.form.Init()
	}
	s.submitting = true
	s.errMsg = ""
	return tea.Batch(cmd, s.d.forgotPasswordCmd(s.rec))
}

func (s *forgotScreen) View() string {
	var b strings.Builder
	b.WriteString(logoStyle.Render("NEXA") + "\n\n")
	if s.submitted {
		b.WriteString(okStyle.Render("✓ ") + forgotSentMessage + "\n")
		if s.serverNote != "" {
			b.WriteString(helpStyle.Render(s.serverNote) + "\n")
		}
		b.WriteString("\n" + linkStyle.Render("Para voltar") + helpStyle.Render(" (enter)"))
		return centered(s.width, s.height, cardStyle.Width(formWidth(s.width)).Render(b.String()))
	}

	b.WriteString(titleStyle.Render("Esqueceu sua senha?") + "\n")
	b.WriteString(subtitleStyle.Width(formWidth(s.width)).Render("Não se preocupe, isso acontece com todo mundo. Digite seu email e enviaremos um link para redefinir sua senha.") + "\n\n")
	if s.submitting {
		b.WriteString("Enviando…\n")
	} else {
		b.WriteString(s.form.View() + "\n")
	}
	if s.errMsg != "" {
		b.WriteString(errorStyle.Render(s.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("Lembrou sua senha? ") + linkStyle.Render("Entrar") + helpStyle.Render(" (esc)"))
	return centered(s.width, s.height, b.String())
}
