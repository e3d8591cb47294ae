package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NavEntry is one row of the navigation panel.
type NavEntry struct {
	Label string
	Icon  string
	Key   ViewKey
}

// NavStyles styles the rows and frames of a NavPanel. Hosts pass their own
// palette through Config; DefaultNavStyles is used when they do not.
type NavStyles struct {
	Item    lipgloss.Style
	Current lipgloss.Style
	Cursor  lipgloss.Style
	Hint    lipgloss.Style
	Box     lipgloss.Style
	Overlay lipgloss.Style
}

// DefaultNavStyles returns a neutral palette for hosts without a theme.
func DefaultNavStyles() NavStyles {
	accent := lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	return NavStyles{
		Item:    lipgloss.NewStyle().Padding(0, 1),
		Current: lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),
		Cursor:  lipgloss.NewStyle().Reverse(true).Padding(0, 1),
		Hint:    lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Box:     lipgloss.NewStyle().Padding(1, 0),
		Overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
	}
}

// NavPanel lists the entries of a role shell and reports activations through
// OnSelect. It never changes the selection itself.
//
// On narrow layouts the panel is an overlay that is opened explicitly and
// closes after a selection. On wide layouts it is always visible and the open
// flag is ignored.
type NavPanel struct {
	entries  []NavEntry
	cursor   int
	narrow   bool
	open     bool
	styles   NavStyles
	OnSelect func(ViewKey)
}

// NewNavPanel returns a panel over entries. onSelect may be nil.
func NewNavPanel(entries []NavEntry, onSelect func(ViewKey)) *NavPanel {
	return &NavPanel{
		entries:  append([]NavEntry(nil), entries...),
		styles:   DefaultNavStyles(),
		OnSelect: onSelect,
	}
}

// Entries returns a copy of the panel's entries.
func (n *NavPanel) Entries() []NavEntry {
	return append([]NavEntry(nil), n.entries...)
}

// SetStyles replaces the panel's styles.
func (n *NavPanel) SetStyles(s NavStyles) { n.styles = s }

// Styles returns the styles the panel renders with.
func (n *NavPanel) Styles() NavStyles { return n.styles }

// Cursor returns the highlighted row index.
func (n *NavPanel) Cursor() int { return n.cursor }

// Narrow reports whether the panel is in overlay mode.
func (n *NavPanel) Narrow() bool { return n.narrow }

// SetNarrow switches between overlay and sidebar mode. Leaving overlay mode
// drops the open flag since a sidebar has no open/close state.
func (n *NavPanel) SetNarrow(narrow bool) {
	n.narrow = narrow
	if !narrow {
		n.open = false
	}
}

// Open shows the overlay. It has no effect on wide layouts.
func (n *NavPanel) Open() {
	if n.narrow {
		n.open = true
	}
}

// Close hides the overlay.
func (n *NavPanel) Close() { n.open = false }

// Toggle flips the overlay state on narrow layouts.
func (n *NavPanel) Toggle() {
	if n.open {
		n.Close()
		return
	}
	n.Open()
}

// IsOpen reports whether the overlay is showing.
func (n *NavPanel) IsOpen() bool { return n.narrow && n.open }

// Visible reports whether the panel is on screen at all.
func (n *NavPanel) Visible() bool { return !n.narrow || n.open }

func (n *NavPanel) MoveUp() {
	if len(n.entries) == 0 {
		return
	}
	n.cursor = (n.cursor - 1 + len(n.entries)) % len(n.entries)
}

func (n *NavPanel) MoveDown() {
	if len(n.entries) == 0 {
		return
	}
	n.cursor = (n.cursor + 1) % len(n.entries)
}

// Focus moves the cursor onto the entry carrying key, if any.
func (n *NavPanel) Focus(key ViewKey) {
	for i, e := range n.entries {
		if e.Key == key {
			n.cursor = i
			return
		}
	}
}

// Activate selects the entry under the cursor.
func (n *NavPanel) Activate() (ViewKey, bool) {
	return n.Choose(n.cursor)
}

// Choose selects the entry at index. The overlay closes in the same step the
// callback fires, so the caller observes both changes in one update.
func (n *NavPanel) Choose(index int) (ViewKey, bool) {
	if index < 0 || index >= len(n.entries) {
		return "", false
	}
	n.cursor = index
	key := n.entries[index].Key
	if n.narrow {
		n.open = false
	}
	if n.OnSelect != nil {
		n.OnSelect(key)
	}
	return key, true
}

// ChooseKey selects the first entry carrying key.
func (n *NavPanel) ChooseKey(key ViewKey) bool {
	for i, e := range n.entries {
		if e.Key == key {
			_, ok := n.Choose(i)
			return ok
		}
	}
	return false
}

// Render draws the panel. current is highlighted as the active view; the
// cursor row is drawn inverted.
func (n *NavPanel) Render(current ViewKey, width, height int) string {
	rows := make([]string, 0, len(n.entries)+2)
	inner := width - 2
	if inner < 8 {
		inner = 8
	}
	for i, e := range n.entries {
		label := e.Label
		if e.Icon != "" {
			label = e.Icon + "  " + label
		}
		style := n.styles.Item
		switch {
		case i == n.cursor:
			style = n.styles.Cursor
		case e.Key == current:
			style = n.styles.Current
		}
		rows = append(rows, style.Width(inner).Render(truncate(label, inner-2)))
	}
	if n.narrow {
		rows = append(rows, "", n.styles.Hint.Render("enter escolher · esc fechar"))
		box := n.styles.Overlay.Render(strings.Join(rows, "\n"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}
	body := strings.Join(rows, "\n")
	h := height
	if h < lipgloss.Height(body) {
		h = lipgloss.Height(body)
	}
	return n.styles.Box.Width(width).Height(h).Render(body)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}
