package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/forms"
)

// studentScreen collects the student verification record and continues to
// the creator dashboard.
type studentScreen struct {
	d      *deps
	rec    forms.StudentVerification
	form   *huh.Form
	errMsg string
	done   bool
	width  int
	height int
}

func newStudentScreen(d *deps) *studentScreen {
	s := &studentScreen{d: d}
	s.form = s.buildForm()
	return s
}

func (s *studentScreen) buildForm() *huh.Form {
	fields := make([]huh.Field, 0, len(forms.StudentFields))
	for _, f := range forms.StudentFields {
		fields = append(fields, huh.NewInput().Key(f.Key).
			Title(f.Label).
			Placeholder(f.Placeholder).
			Value(s.rec.Ptr(f.Key)).
			Validate(forms.Required(forms.RequiredMessage(f.Label))))
	}
	return newForm(huh.NewGroup(fields...)).WithWidth(formWidth(s.width))
}

func (s *studentScreen) Init() tea.Cmd { return s.form.Init() }

func (s *studentScreen) Typing() bool { return !s.done && formActive(s.form) }

func (s *studentScreen) SetSize(width, height int) {
	s.width, s.height = width, height
	s.form = s.form.WithWidth(formWidth(width))
}

func (s *studentScreen) HandleAction(Action) (bool, tea.Cmd) { return false, nil }

func (s *studentScreen) Update(msg tea.Msg) tea.Cmd {
	if s.done {
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
	s.done = true
	s.d.logger.Info("student verification submitted",
		zap.String("full_name", s.rec.FullName),
		zap.String("institution", s.rec.Institution),
		zap.String("course", s.rec.CourseName))
	return tea.Batch(cmd, replaceRoute(pathCreatorHome))
}

func (s *studentScreen) View() string {
	var b strings.Builder
	b.WriteString(renderSteps([]string{"Conta", "Verificação", "Painel"}, 1) + "\n\n")
	b.WriteString(titleStyle.Render("Verify your student status for free access") + "\n")
	b.WriteString(subtitleStyle.Width(formWidth(s.width)).Render("Fill in the information below to validate your access as a student of the course. This guarantees access free for up to 12 months.") + "\n")
	b.WriteString(statusInfoStyle.Render("ⓘ Don't miss it.") + "\n\n")
	b.WriteString(s.form.View() + "\n")
	if s.errMsg != "" {
		b.WriteString(errorStyle.Render(s.errMsg) + "\n")
	}
	b.WriteString(helpStyle.Render("enter para avançar · Submit for verification no último campo"))
	return centered(s.width, s.height, b.String())
}
