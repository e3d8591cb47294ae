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

type brandAccountMode int

const (
	brandViewing brandAccountMode = iota
	brandEditing
	brandChangingPassword
)

// brandAccount shows the brand profile with an edit form and a change
// password dialog.
type brandAccount struct {
	d        *deps
	mode     brandAccountMode
	draft    forms.BrandProfile
	password forms.PasswordChange
	form     *huh.Form
	saving   bool
	errMsg   string
	width    int
	height   int
}

func newBrandAccount(d *deps) *brandAccount {
	return &brandAccount{d: d}
}

func (v *brandAccount) Typing() bool { return formActive(v.form) }

func (v *brandAccount) SetSize(width, height int) {
	v.width, v.height = width, height
	if v.form != nil {
		v.form = v.form.WithWidth(formWidth(width))
	}
}

func (v *brandAccount) openProfileForm(p forms.BrandProfile) tea.Cmd {
	v.mode = brandEditing
	v.draft = p
	v.errMsg = ""
	v.form = newForm(huh.NewGroup(
		huh.NewInput().Key("brandName").Title("Brand Name").
			Value(&v.draft.BrandName).
			Validate(forms.Required("Brand Name é obrigatório")),
		huh.NewInput().Key("email").Title("Email").
			Value(&v.draft.Email).
			Validate(forms.Email),
		huh.NewInput().Key("companyName").Title("Company Name").
			Value(&v.draft.CompanyName),
		huh.NewInput().Key("instagram").Title("Instagram").
			Value(&v.draft.Instagram),
		huh.NewText().Key("description").Title("Description").
			Lines(3).
			Value(&v.draft.Description),
	)).WithWidth(formWidth(v.width))
	return v.form.Init()
}

func (v *brandAccount) openPasswordForm() tea.Cmd {
	v.mode = brandChangingPassword
	v.password = forms.PasswordChange{}
	v.errMsg = ""
	v.form = newForm(huh.NewGroup(
		huh.NewInput().Key("old").Title("Senha atual").
			EchoMode(huh.EchoModePassword).
			Value(&v.password.Old).
			Validate(forms.PasswordPresent),
		huh.NewInput().Key("new").Title("Nova senha").
			EchoMode(huh.EchoModePassword).
			Value(&v.password.New).
			Validate(forms.Password),
		huh.NewInput().Key("confirm").Title("Confirmar nova senha").
			EchoMode(huh.EchoModePassword).
			Value(&v.password.Confirm).
			Validate(forms.ConfirmPassword(func() string { return v.password.New })),
	)).WithWidth(formWidth(v.width))
	return v.form.Init()
}

func (v *brandAccount) close() {
	v.mode = brandViewing
	v.form = nil
}

func (v *brandAccount) HandleAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActEdit:
		if v.mode == brandViewing {
			return true, v.openProfileForm(v.d.brand)
		}
	case ActChangePassword:
		if v.mode == brandViewing {
			return true, v.openPasswordForm()
		}
	case ActCancel:
		if v.mode != brandViewing {
			v.close()
			v.errMsg = ""
			return true, nil
		}
	}
	return false, nil
}

func (v *brandAccount) Update(msg tea.Msg) tea.Cmd {
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
	if v.form.State != huh.StateCompleted {
		return cmd
	}
	if v.mode == brandChangingPassword {
		return tea.Batch(cmd, v.changePassword())
	}
	return tea.Batch(cmd, v.saveProfile())
}

func (v *brandAccount) saveProfile() tea.Cmd {
	if err := v.draft.Validate(); err != nil {
		cmd := v.openProfileForm(v.draft)
		v.errMsg = authapi.Message(err)
		return cmd
	}
	v.d.brand = v.draft
	v.close()
	v.saving = true
	v.errMsg = ""

	name, email, bio := v.draft.BrandName, v.draft.Email, v.draft.Description
	v.d.store.Dispatch(store.UpdateProfile{Patch: store.ProfilePatch{
		Name:  &name,
		Email: &email,
		Bio:   &bio,
	}})
	v.d.logger.Info("profile saved", zap.String("role", "brand"))
	return v.d.profileUpdateCmd(authapi.ProfileUpdateRequest{
		BrandName:   v.draft.BrandName,
		Email:       v.draft.Email,
		CompanyName: v.draft.CompanyName,
		Instagram:   v.draft.Instagram,
		Description: v.draft.Description,
	})
}

func (v *brandAccount) changePassword() tea.Cmd {
	if err := v.password.Validate(); err != nil {
		cmd := v.openPasswordForm()
		v.errMsg = authapi.Message(err)
		return cmd
	}
	req := authapi.ProfileUpdateRequest{
		OldPassword: v.password.Old,
		NewPassword: v.password.New,
	}
	v.password = forms.PasswordChange{}
	v.close()
	v.saving = true
	v.errMsg = ""
	v.d.logger.Info("password change submitted", zap.String("role", "brand"))
	return v.d.profileUpdateCmd(req)
}

func (v *brandAccount) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My Account") + "\n\n")

	switch v.mode {
	case brandEditing, brandChangingPassword:
		title := "Edit Profile"
		if v.mode == brandChangingPassword {
			title = "Change Password"
		}
		b.WriteString(sectionTitle.Render(title) + "\n")
		b.WriteString(v.form.View() + "\n")
		if v.errMsg != "" {
			b.WriteString(errorStyle.Render(v.errMsg) + "\n")
		}
		b.WriteString(helpStyle.Render("esc cancelar"))
		return b.String()
	}

	p := v.d.brand
	heading := badgeStyle.Render(forms.Initials(p.BrandName)) + "  " + titleStyle.Render(p.BrandName) +
		"\n" + subtitleStyle.Render(p.Description)
	b.WriteString(renderProfileCard("Brand Profile", heading, []field{
		{"Email", p.Email},
		{"Company Name", p.CompanyName},
		{"Instagram", p.Instagram},
	}, min(max(v.width-2, 30), 72)) + "\n")

	switch {
	case v.saving:
		b.WriteString(statusLine(statusInfo, "Salvando…") + "\n")
	case v.errMsg != "":
		b.WriteString(statusLine(statusError, v.errMsg) + "\n")
	}
	b.WriteString(linkStyle.Render("Edit") + helpStyle.Render(" (e)") + "   " +
		linkStyle.Render("Change Password") + helpStyle.Render(" (p)"))
	return b.String()
}
