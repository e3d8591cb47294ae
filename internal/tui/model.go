// Package tui is the Bubble Tea front end of the Nexa client: a route table
// of screens, the two role shells and the global keymap.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/config"
	"github.com/SimoKiihamaki/nexa/internal/forms"
	"github.com/SimoKiihamaki/nexa/internal/shell"
	"github.com/SimoKiihamaki/nexa/internal/store"
)

// Options wires the program to its collaborators.
type Options struct {
	Store      *store.Store
	Client     *authapi.Client
	Logger     *zap.Logger
	Config     config.Config
	SystemDark bool
	// Runner starts the browser for links; nil uses os/exec.
	Runner commandRunner
	// LogPath is shown in the help overlay.
	LogPath string
}

type toast struct {
	id      int
	message string
	isErr   bool
}

type model struct {
	d    *deps
	keys KeyMap

	path     string
	screenID string
	screen   screen
	history  []string

	width  int
	height int

	showHelp bool
	toast    *toast
	toastSeq int
	lastErr  string
	logPath  string
}

// New builds the root model. Missing collaborators are replaced with
// working defaults so tests can pass only what they exercise.
func New(opts Options) model {
	st := opts.Store
	if st == nil {
		st = store.New()
	}
	client := opts.Client
	if client == nil {
		client = authapi.New("")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runner := opts.Runner
	if runner == nil {
		runner = startCommand
	}
	cfg := opts.Config
	if cfg.Version == "" {
		cfg = config.Defaults()
	}
	if t := store.Theme(cfg.Theme); t == store.ThemeLight || t == store.ThemeDark || t == store.ThemeSystem {
		st.Dispatch(store.UpdatePreferences{Patch: store.PreferencesPatch{Theme: &t}})
	}

	d := &deps{
		store:      st,
		client:     client,
		logger:     logger,
		cfg:        cfg,
		systemDark: opts.SystemDark,
		runner:     runner,
		creator:    forms.DefaultCreatorProfile(),
		brand:      forms.DefaultBrandProfile(),
	}
	m := model{
		d:       d,
		keys:    DefaultKeyMap(),
		logPath: opts.LogPath,
	}
	m.applyTheme()
	m.mount(cfg.StartRoute)
	return m
}

func (m model) Init() tea.Cmd {
	return m.screen.Init()
}

// mount replaces the current screen with the one path routes to.
func (m *model) mount(path string) {
	path = normalizePath(path)
	id, params := match(path)
	m.path = path
	m.screenID = id
	m.screen = m.buildScreen(id, path, params)
	if m.width > 0 {
		m.screen.SetSize(m.width, m.bodyHeight())
	}
	m.d.logger.Info("route mounted", zap.String("path", path), zap.String("screen", id))
}

func (m *model) buildScreen(id, path string, params map[string]string) screen {
	switch id {
	case screenLanding:
		return newLandingScreen(m.d)
	case screenAuth:
		return newAuthStepScreen()
	case screenSignup:
		return newSignupScreen(m.d, params[paramRole])
	case screenForgot:
		return newForgotScreen(m.d)
	case screenStudent:
		return newStudentScreen(m.d)
	case screenCreator, screenBrand:
		role := shell.RoleBrand
		if id == screenCreator {
			role = shell.RoleCreator
		}
		s, err := newShellScreen(m.d, role)
		if err != nil {
			m.d.logger.Error("mount role shell", zap.String("role", role.String()), zap.Error(err))
			m.screenID = screenNotFound
			return newNotFoundScreen(path)
		}
		return s
	default:
		return newNotFoundScreen(path)
	}
}

// bodyHeight leaves one row for the status bar.
func (m model) bodyHeight() int {
	return max(m.height-1, 1)
}

func (m *model) applyTheme() {
	lipgloss.SetHasDarkBackground(m.d.dark())
}

// IsTyping reports whether the mounted screen has a focused text field.
func (m model) IsTyping() bool {
	return m.screen != nil && m.screen.Typing()
}

func (m *model) setStatus(note string, isErr bool) tea.Cmd {
	if note == "" {
		return nil
	}
	m.toastSeq++
	m.toast = &toast{id: m.toastSeq, message: note, isErr: isErr}
	if isErr {
		m.lastErr = note
	}
	ttl := m.d.cfg.ToastTTL()
	if ttl <= 0 {
		return nil
	}
	return expireToast(m.toastSeq, ttl)
}
