package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/shell"
	"github.com/SimoKiihamaki/nexa/internal/store"
)

var creatorNav = []shell.NavEntry{
	{Label: "Início", Icon: "⌂", Key: shell.KeyDashboard},
	{Label: "Minhas Aplicações", Icon: "☰", Key: shell.KeyMyApplications},
	{Label: "Conversas", Icon: "✉", Key: shell.KeyConversations},
	{Label: "Minha Conta", Icon: "☺", Key: shell.KeyMyAccount},
	{Label: "Meu Portfólio", Icon: "★", Key: shell.KeyMyPortfolio},
}

var brandNav = []shell.NavEntry{
	{Label: "My Campaigns", Icon: "◆", Key: shell.KeyMyCampaigns},
	{Label: "New Campaign", Icon: "+", Key: shell.KeyNewCampaign},
	{Label: "Conversations", Icon: "✉", Key: shell.KeyConversations},
	{Label: "My Account", Icon: "☺", Key: shell.KeyMyAccount},
	{Label: "Payment", Icon: "$", Key: shell.KeyPayment},
}

func creatorRegistry(d *deps) *shell.Registry[view] {
	return shell.MustRegistry(newNotFoundView,
		shell.Register(shell.KeyDashboard, func() view { return newCreatorDashboard(d) }),
		shell.Register(shell.KeyMyAccount, func() view { return newCreatorAccount(d) }),
	)
}

func brandRegistry(d *deps) *shell.Registry[view] {
	return shell.MustRegistry(newNotFoundView,
		shell.Register(shell.KeyMyCampaigns, func() view { return newBrandCampaigns(d) }),
		shell.Register(shell.KeyMyAccount, func() view { return newBrandAccount(d) }),
	)
}

func shellConfig(d *deps, role shell.Role) shell.Config[view] {
	cfg := shell.Config[view]{
		Role:       role,
		Breakpoint: d.cfg.NarrowWidth(),
		Logger:     d.logger,
		NavStyles:  &navStyles,
	}
	if role == shell.RoleCreator {
		cfg.Title = "Creator"
		cfg.DefaultKey = shell.KeyDashboard
		cfg.Nav = creatorNav
		cfg.Registry = creatorRegistry(d)
		return cfg
	}
	cfg.Title = "Brand"
	cfg.DefaultKey = shell.KeyMyCampaigns
	cfg.Nav = brandNav
	cfg.Registry = brandRegistry(d)
	return cfg
}

// shellScreen mounts a role shell. On wide layouts tab moves focus between
// the sidebar and the view; on narrow layouts m opens the overlay.
type shellScreen struct {
	d        *deps
	shell    *shell.Shell[view]
	navFocus bool
	width    int
	height   int
}

func newShellScreen(d *deps, role shell.Role) (*shellScreen, error) {
	sh, err := shell.New(shellConfig(d, role))
	if err != nil {
		return nil, err
	}
	return &shellScreen{d: d, shell: sh}, nil
}

func (s *shellScreen) Init() tea.Cmd { return nil }

func (s *shellScreen) current() view {
	v, _ := s.shell.Resolve()
	return v
}

func (s *shellScreen) narrow() bool {
	return s.shell.Layout(s.width) == shell.LayoutNarrow
}

func (s *shellScreen) header() string {
	return renderHeader(s.d.store.State(), s.shell.Title(), s.width, s.narrow())
}

// contentSize is the box the resolved view renders into.
func (s *shellScreen) contentSize() (int, int) {
	h := max(s.height-lipgloss.Height(s.header()), 1)
	if s.narrow() {
		return s.width, h
	}
	return max(s.width-shell.SidebarWidth-1, 1), h
}

func (s *shellScreen) SetSize(width, height int) {
	s.width, s.height = width, height
	if s.narrow() {
		s.navFocus = false
	}
	s.current().SetSize(s.contentSize())
}

func (s *shellScreen) Typing() bool {
	if s.shell.Nav().IsOpen() || s.navFocus {
		return false
	}
	return s.current().Typing()
}

func (s *shellScreen) HandleAction(act Action) (bool, tea.Cmd) {
	nav := s.shell.Nav()
	if nav.IsOpen() {
		return s.handleOverlay(act)
	}
	if act == ActSignOut {
		return true, s.signOut()
	}
	if s.current().Typing() {
		return s.current().HandleAction(act)
	}
	if i, ok := entryIndexFromAction(act); ok {
		if _, chosen := nav.Choose(i); chosen {
			s.afterSelect()
		}
		return true, nil
	}

	switch act {
	case ActToggleMenu:
		if s.narrow() {
			nav.Focus(s.shell.Current())
			nav.Open()
			return true, nil
		}
		s.navFocus = !s.navFocus
		return true, nil
	case ActFocusSwitch:
		if !s.narrow() {
			s.navFocus = !s.navFocus
			return true, nil
		}
	}

	if s.navFocus {
		switch act {
		case ActNavigateUp:
			nav.MoveUp()
			return true, nil
		case ActNavigateDown:
			nav.MoveDown()
			return true, nil
		case ActConfirm:
			if _, ok := nav.Activate(); ok {
				s.navFocus = false
				s.afterSelect()
			}
			return true, nil
		case ActCancel:
			s.navFocus = false
			return true, nil
		}
	}
	return s.current().HandleAction(act)
}

func (s *shellScreen) handleOverlay(act Action) (bool, tea.Cmd) {
	nav := s.shell.Nav()
	switch act {
	case ActNavigateUp:
		nav.MoveUp()
	case ActNavigateDown:
		nav.MoveDown()
	case ActConfirm:
		if _, ok := nav.Activate(); ok {
			s.afterSelect()
		}
	case ActCancel, ActToggleMenu:
		nav.Close()
	case ActSignOut:
		nav.Close()
		return true, s.signOut()
	default:
		if i, ok := entryIndexFromAction(act); ok {
			if _, chosen := nav.Choose(i); chosen {
				s.afterSelect()
			}
			return true, nil
		}
		return false, nil
	}
	return true, nil
}

// afterSelect sizes the newly resolved view.
func (s *shellScreen) afterSelect() {
	v, registered := s.shell.Resolve()
	v.SetSize(s.contentSize())
	s.d.logger.Info("shell view selected",
		zap.String("role", s.shell.Role().String()),
		zap.String("key", s.shell.Current().String()),
		zap.Bool("registered", registered))
}

func (s *shellScreen) signOut() tea.Cmd {
	s.d.store.Dispatch(store.Logout{})
	s.d.logger.Info("signed out", zap.String("role", s.shell.Role().String()))
	return tea.Batch(status("Sessão encerrada"), replaceRoute(pathLanding))
}

func (s *shellScreen) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok && (s.shell.Nav().IsOpen() || s.navFocus) {
		return nil
	}
	return s.current().Update(msg)
}

func (s *shellScreen) View() string {
	return s.shell.Render(s.width, s.height, s.header(), func(v view, width, height int) string {
		v.SetSize(width, height)
		return v.View()
	})
}
