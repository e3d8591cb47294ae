package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/forms"
	"github.com/SimoKiihamaki/nexa/internal/shell"
)

type signupMode int

const (
	modeSignup signupMode = iota
	modeSignin
)

// signupScreen hosts the signup and signin forms for one role.
type signupScreen struct {
	d          *deps
	role       shell.Role
	mode       signupMode
	signup     forms.Signup
	signin     forms.Signin
	form       *huh.Form
	spin       spinner.Model
	submitting bool
	errMsg     string
	width      int
	height     int
}

func newSignupScreen(d *deps, role string) *signupScreen {
	r := shell.ParseRole(role)
	s := &signupScreen{
		d:    d,
		role: r,
		spin: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	s.signup.Role = r.String()
	s.form = s.buildForm()
	return s
}

func (s *signupScreen) buildForm() *huh.Form {
	if s.mode == modeSignin {
		return newForm(huh.NewGroup(
			huh.NewInput().Key("email").Title("E-mail").
				Placeholder("email@exemplo.com").
				Value(&s.signin.Email).
				Validate(forms.Email),
			huh.NewInput().Key("password").Title("Senha").
				Placeholder("Digite sua senha").
				EchoMode(huh.EchoModePassword).
				Value(&s.signin.Password).
				Validate(forms.PasswordPresent),
			huh.NewConfirm().Key("remember").Title("Lembrar-me").
				Affirmative("Sim").Negative("Não").
				Value(&s.signin.Remember),
		)).WithWidth(formWidth(s.width))
	}

	fields := []huh.Field{
		huh.NewInput().Key("name").Title("Nome").
			Placeholder("Seu nome").
			Value(&s.signup.Name).
			Validate(forms.Name),
		huh.NewInput().Key("email").Title("E-mail").
			Placeholder("email@exemplo.com").
			Value(&s.signup.Email).
			Validate(forms.Email),
		huh.NewInput().Key("whatsapp").Title("WhatsApp").
			Placeholder("(00) 00000-0000").
			Value(&s.signup.WhatsApp),
		huh.NewInput().Key("password").Title("Senha").
			Placeholder("Crie uma senha segura").
			EchoMode(huh.EchoModePassword).
			Value(&s.signup.Password).
			Validate(forms.Password),
		huh.NewInput().Key("confirmPassword").Title("Confirmar Senha").
			Placeholder("Repita a senha").
			EchoMode(huh.EchoModePassword).
			Value(&s.signup.ConfirmPassword).
			Validate(forms.ConfirmPassword(func() string { return s.signup.Password })),
	}
	if s.role == shell.RoleCreator {
		fields = append(fields, huh.NewConfirm().Key("isStudent").
			Title("Sou um estudante e quero verificar meu status").
			Affirmative("Sim").Negative("Não").
			Value(&s.signup.IsStudent))
	}
	return newForm(huh.NewGroup(fields...)).WithWidth(formWidth(s.width))
}

func (s *signupScreen) Init() tea.Cmd { return s.form.Init() }

func (s *signupScreen) Typing() bool { return formActive(s.form) && !s.submitting }

func (s *signupScreen) SetSize(width, height int) {
	s.width, s.height = width, height
	s.form = s.form.WithWidth(formWidth(width))
}

func (s *signupScreen) HandleAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActToggleMode:
		if s.submitting {
			return true, nil
		}
		if s.mode == modeSignup {
			s.mode = modeSignin
		} else {
			s.mode = modeSignup
		}
		s.errMsg = ""
		s.form = s.buildForm()
		return true, s.form.Init()
	case ActForgotPassword:
		return true, navigate(pathForgotPassword)
	}
	return false, nil
}

func (s *signupScreen) Update(msg tea.Msg) tea.Cmd {
	switch typed := msg.(type) {
	case spinner.TickMsg:
		if !s.submitting {
			return nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(typed)
		return cmd
	case authResultMsg:
		if !s.submitting {
			return nil
		}
		s.submitting = false
		if typed.err != nil {
			s.errMsg = authapi.Message(typed.err)
			s.form = s.buildForm()
			return s.form.Init()
		}
		if typed.signup {
			return replaceRoute(signupDestination(typed.role, typed.isStudent))
		}
		return replaceRoute(signinDestination(typed.role))
	}

	if s.submitting {
		return nil
	}
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	if s.form.State == huh.StateCompleted {
		return tea.Batch(cmd, s.submit())
	}
	return cmd
}

// submit validates the whole record again, since the per-field checks do
// not see later edits to the password.
func (s *signupScreen) submit() tea.Cmd {
	if s.mode == modeSignin {
		if err := s.signin.Validate(); err != nil {
			return s.reject(err)
		}
		s.submitting = true
		s.errMsg = ""
		return tea.Batch(s.spin.Tick, s.d.signinCmd(s.signin, s.role.String()))
	}
	if s.role != shell.RoleCreator {
		s.signup.IsStudent = false
	}
	if err := s.signup.Validate(); err != nil {
		return s.reject(err)
	}
	s.submitting = true
	s.errMsg = ""
	return tea.Batch(s.spin.Tick, s.d.signupCmd(s.signup))
}

func (s *signupScreen) reject(err error) tea.Cmd {
	s.errMsg = authapi.Message(err)
	s.form = s.buildForm()
	return s.form.Init()
}

func (s *signupScreen) View() string {
	var b strings.Builder
	b.WriteString(logoStyle.Render("NEXA") + "\n\n")

	signupTab, signinTab := tabInactive.Render("Registrar"), tabActive.Render("Entrar")
	title, subtitle := "Entrar", "Entre na sua conta"
	if s.mode == modeSignup {
		signupTab, signinTab = tabActive.Render("Registrar"), tabInactive.Render("Entrar")
		title, subtitle = "Cadastrar", "Crie sua conta para começar"
	}
	b.WriteString(signupTab + "  " + signinTab + "\n\n")
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(subtitleStyle.Render(subtitle) + "\n\n")

	if s.submitting {
		b.WriteString(s.spin.View() + " Enviando…\n")
	} else {
		b.WriteString(s.form.View() + "\n")
	}
	if s.errMsg != "" {
		b.WriteString(errorStyle.Render(s.errMsg) + "\n")
	}

	b.WriteString("\n")
	if s.mode == modeSignup {
		b.WriteString(helpStyle.Render("Já tem uma conta? ") + linkStyle.Render("Entrar") + helpStyle.Render(" (ctrl+n)") + "\n")
	} else {
		b.WriteString(helpStyle.Render("Não tem uma conta? ") + linkStyle.Render("Criar conta") + helpStyle.Render(" (ctrl+n)") + "\n")
		b.WriteString(linkStyle.Render("Esqueceu a senha?") + helpStyle.Render(" (ctrl+f)") + "\n")
	}
	return centered(s.width, s.height, b.String())
}
