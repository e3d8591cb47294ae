package shell

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// SidebarWidth is the width of the permanent panel on wide layouts.
const SidebarWidth = 26

// Config describes one role shell.
type Config[V any] struct {
	Role       Role
	Title      string
	DefaultKey ViewKey
	Nav        []NavEntry
	Registry   *Registry[V]
	Breakpoint int
	Logger     *zap.Logger
	// NavStyles overrides DefaultNavStyles when set.
	NavStyles  *NavStyles
}

// Shell composes a header, a navigation panel and the view resolved from the
// current selection. It owns its Selection; nothing else writes to it.
type Shell[V any] struct {
	role       Role
	title      string
	registry   *Registry[V]
	selection  *Selection
	nav        *NavPanel
	responsive Responsive
	logger     *zap.Logger
	missing    []ViewKey

	view         V
	viewKey      ViewKey
	registered   bool
	haveResolved bool
}

// New mounts a shell with its selection set to cfg.DefaultKey. Nav entries
// without a registered view are allowed; they resolve to the fallback and are
// reported once through the logger.
func New[V any](cfg Config[V]) (*Shell[V], error) {
	if cfg.Registry == nil {
		return nil, errors.New("shell: registry is required")
	}
	if !cfg.Registry.Has(cfg.DefaultKey) {
		return nil, fmt.Errorf("shell: default key %q is not registered", cfg.DefaultKey)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Shell[V]{
		role:       cfg.Role,
		title:      cfg.Title,
		registry:   cfg.Registry,
		selection:  NewSelection(cfg.DefaultKey),
		responsive: Responsive{Breakpoint: cfg.Breakpoint},
		logger:     logger,
		missing:    cfg.Registry.Unregistered(cfg.Nav),
	}
	s.nav = NewNavPanel(cfg.Nav, func(k ViewKey) { s.Select(k) })
	if cfg.NavStyles != nil {
		s.nav.SetStyles(*cfg.NavStyles)
	}
	s.nav.Focus(cfg.DefaultKey)
	for _, k := range s.missing {
		logger.Warn("nav entry has no registered view",
			zap.String("role", cfg.Role.String()),
			zap.String("key", k.String()))
	}
	return s, nil
}

func (s *Shell[V]) Role() Role { return s.role }

func (s *Shell[V]) Title() string { return s.title }

// Nav returns the shell's navigation panel.
func (s *Shell[V]) Nav() *NavPanel { return s.nav }

// Current returns the selected key, registered or not.
func (s *Shell[V]) Current() ViewKey { return s.selection.Current() }

// Unregistered returns the nav keys found without a view at mount.
func (s *Shell[V]) Unregistered() []ViewKey {
	return append([]ViewKey(nil), s.missing...)
}

// Select stores key unconditionally and reports whether it changed.
func (s *Shell[V]) Select(key ViewKey) bool {
	changed := s.selection.Set(key)
	if changed {
		s.logger.Debug("shell selection changed",
			zap.String("role", s.role.String()),
			zap.String("key", key.String()))
	}
	return changed
}

// Resolve returns the view for the current selection and whether it was
// registered. The view is rebuilt only when the selection has changed since
// the last call, so repeated selection of one key keeps the same instance.
func (s *Shell[V]) Resolve() (V, bool) {
	cur := s.selection.Current()
	if !s.haveResolved || cur != s.viewKey {
		s.view, s.registered = s.registry.Resolve(cur)
		s.viewKey = cur
		s.haveResolved = true
	}
	return s.view, s.registered
}

// Layout classifies width and updates the panel mode to match.
func (s *Shell[V]) Layout(width int) Layout {
	l := s.responsive.Classify(width)
	s.nav.SetNarrow(l == LayoutNarrow)
	return l
}

// Body renders the resolved view into the given box.
type Body[V any] func(view V, width, height int) string

// Render lays out header, panel and content for the viewport. Narrow layouts
// show either the open overlay or the content; wide layouts show both side by
// side.
func (s *Shell[V]) Render(width, height int, header string, body Body[V]) string {
	s.Layout(width)
	view, _ := s.Resolve()
	current := s.selection.Current()
	rest := height - lipgloss.Height(header)
	if rest < 1 {
		rest = 1
	}
	return s.responsive.Render(width,
		func() string {
			if s.nav.IsOpen() {
				return lipgloss.JoinVertical(lipgloss.Left, header, s.nav.Render(current, width, rest))
			}
			return lipgloss.JoinVertical(lipgloss.Left, header, body(view, width, rest))
		},
		func() string {
			side := s.nav.Render(current, SidebarWidth, rest)
			content := body(view, width-SidebarWidth-1, rest)
			return lipgloss.JoinVertical(lipgloss.Left, header,
				lipgloss.JoinHorizontal(lipgloss.Top, side, " ", content))
		},
	)
}
