package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/config"
	"github.com/SimoKiihamaki/nexa/internal/forms"
	"github.com/SimoKiihamaki/nexa/internal/store"
)

// deps are shared by every screen of one program.
type deps struct {
	store      *store.Store
	client     *authapi.Client
	logger     *zap.Logger
	cfg        config.Config
	systemDark bool
	runner     commandRunner

	// Profile records outlive the views that edit them.
	creator forms.CreatorProfile
	brand   forms.BrandProfile
}

// offlineUser stands in for the API response when no backend is configured.
func offlineUser(name, email, role string) authapi.AuthResponse {
	return authapi.AuthResponse{
		User: authapi.User{
			ID:    "local-" + uuid.NewString(),
			Email: email,
			Name:  name,
			Role:  role,
		},
	}
}

func (d *deps) signupCmd(rec forms.Signup) tea.Cmd {
	client := d.client
	return func() tea.Msg {
		msg := authResultMsg{signup: true, role: rec.Role, isStudent: rec.IsStudent}
		if !client.Configured() {
			msg.offline = true
			msg.resp = offlineUser(rec.Name, rec.Email, rec.Role)
			return msg
		}
		msg.resp, msg.err = client.Signup(context.Background(), rec)
		return msg
	}
}

func (d *deps) signinCmd(rec forms.Signin, role string) tea.Cmd {
	client := d.client
	return func() tea.Msg {
		msg := authResultMsg{role: role}
		if !client.Configured() {
			msg.offline = true
			msg.resp = offlineUser("", rec.Email, role)
			return msg
		}
		msg.resp, msg.err = client.Signin(context.Background(), rec)
		return msg
	}
}

func (d *deps) forgotPasswordCmd(rec forms.ForgotPassword) tea.Cmd {
	client := d.client
	return func() tea.Msg {
		if !client.Configured() {
			return forgotResultMsg{}
		}
		resp, err := client.ForgotPassword(context.Background(), rec)
		return forgotResultMsg{message: resp.Message, err: err}
	}
}

// profileUpdateCmd pushes req when there is a session to push it with. The
// local store has already been updated by the caller.
func (d *deps) profileUpdateCmd(req authapi.ProfileUpdateRequest) tea.Cmd {
	client := d.client
	token := d.store.State().Auth.Token
	return func() tea.Msg {
		if !client.Configured() || token == "" {
			return profileSavedMsg{message: "Perfil salvo localmente"}
		}
		resp, err := client.ProfileUpdate(context.Background(), token, req)
		return profileSavedMsg{message: resp.Message, err: err}
	}
}

func (d *deps) applyAuthResult(msg authResultMsg) {
	if msg.err != nil {
		d.store.Dispatch(store.LoginFailure{Err: authapi.Message(msg.err)})
		d.logger.Warn("auth request failed",
			zap.Bool("signup", msg.signup),
			zap.String("role", msg.role),
			zap.Error(msg.err))
		return
	}
	u := msg.resp.User
	role := u.Role
	if role == "" {
		role = msg.role
	}
	d.store.Dispatch(store.LoginSuccess{
		User:  store.User{ID: u.ID, Email: u.Email, Name: u.Name, Role: role},
		Token: msg.resp.Token,
	})
	d.logger.Info("signed in",
		zap.Bool("signup", msg.signup),
		zap.Bool("offline", msg.offline),
		zap.String("role", role))
}

func (d *deps) dark() bool {
	return d.store.State().User.Preferences.Theme.IsDark(d.systemDark)
}
