package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/forms"
	"github.com/SimoKiihamaki/nexa/internal/store"
)

// creatorAccount shows the creator profile card and its edit form.
type creatorAccount struct {
	d      *deps
	draft  forms.CreatorProfile
	langs  string
	cats   string
	form   *huh.Form
	saving bool
	errMsg string
	width  int
	height int
}

func newCreatorAccount(d *deps) *creatorAccount {
	return &creatorAccount{d: d}
}

func (v *creatorAccount) editing() bool { return v.form != nil }

func (v *creatorAccount) Typing() bool { return formActive(v.form) }

func (v *creatorAccount) SetSize(width, height int) {
	v.width, v.height = width, height
	if v.form != nil {
		v.form = v.form.WithWidth(formWidth(width))
	}
}

// openForm starts editing a copy of p.
func (v *creatorAccount) openForm(p forms.CreatorProfile) tea.Cmd {
	v.draft = p
	v.draft.Languages = append([]string(nil), p.Languages...)
	v.draft.Categories = append([]string(nil), p.Categories...)
	v.langs = strings.Join(v.draft.Languages, ", ")
	v.cats = strings.Join(v.draft.Categories, ", ")
	v.errMsg = ""

	genders := make([]huh.Option[string], 0, len(forms.Genders))
	for _, g := range forms.Genders {
		genders = append(genders, huh.NewOption(g, g))
	}
	v.form = newForm(huh.NewGroup(
		huh.NewInput().Key("name").Title("Full Name").
			Value(&v.draft.Name).
			Validate(forms.Required("Full Name é obrigatório")),
		huh.NewInput().Key("email").Title("Email").
			Value(&v.draft.Email).
			Validate(forms.Email),
		huh.NewInput().Key("state").Title("State").
			Value(&v.draft.State),
		huh.NewInput().Key("role").Title("Role").
			Value(&v.draft.Role),
		huh.NewInput().Key("languages").Title("Languages").
			Description("Separe por vírgulas").
			Value(&v.langs),
		huh.NewSelect[string]().Key("gender").Title("Gender").
			Options(genders...).
			Value(&v.draft.Gender),
		huh.NewInput().Key("categories").Title("Categories").
			Description("Separe por vírgulas").
			Value(&v.cats),
	)).WithWidth(formWidth(v.width))
	return v.form.Init()
}

func (v *creatorAccount) HandleAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActEdit:
		if v.editing() {
			return false, nil
		}
		return true, v.openForm(v.d.creator)
	case ActCancel:
		if v.editing() {
			v.form = nil
			v.errMsg = ""
			return true, nil
		}
	}
	return false, nil
}

func (v *creatorAccount) Update(msg tea.Msg) tea.Cmd {
	if saved, ok := msg.(profileSavedMsg); ok {
		v.saving = false
		if saved.err != nil {
			v.errMsg = authapi.Message(saved.err)
		}
		return nil
	}
	if v.form == nil {
		return nil
	}
	var cmd tea.Cmd
	v.form, cmd = updateForm(v.form, msg)
	if v.form.State == huh.StateCompleted {
		return tea.Batch(cmd, v.save())
	}
	return cmd
}

func (v *creatorAccount) save() tea.Cmd {
	v.draft.Languages = forms.ParseList(v.langs)
	v.draft.Categories = forms.ParseList(v.cats)
	if err := v.draft.Validate(); err != nil {
		cmd := v.openForm(v.draft)
		v.errMsg = authapi.Message(err)
		return cmd
	}
	v.d.creator = v.draft
	v.form = nil
	v.saving = true
	v.errMsg = ""

	name, email, state := v.draft.Name, v.draft.Email, v.draft.State
	v.d.store.Dispatch(store.UpdateProfile{Patch: store.ProfilePatch{
		Name:     &name,
		Email:    &email,
		Location: &state,
	}})
	v.d.logger.Info("profile saved",
		zap.String("role", "creator"),
		zap.Int("languages", len(v.draft.Languages)),
		zap.Int("categories", len(v.draft.Categories)))
	return v.d.profileUpdateCmd(authapi.ProfileUpdateRequest{
		Name:       v.draft.Name,
		Email:      v.draft.Email,
		State:      v.draft.State,
		Role:       v.draft.Role,
		Gender:     v.draft.Gender,
		Languages:  v.draft.Languages,
		Categories: v.draft.Categories,
	})
}

func (v *creatorAccount) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My Account") + "\n\n")
	if v.editing() {
		b.WriteString(sectionTitle.Render("Edit Profile") + "\n")
		b.WriteString(v.form.View() + "\n")
		if v.errMsg != "" {
			b.WriteString(errorStyle.Render(v.errMsg) + "\n")
		}
		b.WriteString(helpStyle.Render("esc cancelar"))
		return b.String()
	}

	p := v.d.creator
	heading := badgeStyle.Render(forms.Initials(p.Name)) + "  " + titleStyle.Render(p.Name) +
		"\n" + subtitleStyle.Render(p.Email)
	b.WriteString(renderProfileCard("Profile", heading, []field{
		{"State", p.State},
		{"Role", p.Role},
		{"Languages", strings.Join(p.Languages, ", ")},
		{"Gender", p.Gender},
		{"Categories", strings.Join(p.Categories, ", ")},
	}, min(max(v.width-2, 30), 72)) + "\n")

	switch {
	case v.saving:
		b.WriteString(statusLine(statusInfo, "Salvando…") + "\n")
	case v.errMsg != "":
		b.WriteString(statusLine(statusError, v.errMsg) + "\n")
	}
	b.WriteString(linkStyle.Render("Edit") + helpStyle.Render(" (e)"))
	return b.String()
}
