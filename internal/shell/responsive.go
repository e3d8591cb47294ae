package shell

// Layout is the width class of the viewport.
type Layout int

const (
	LayoutWide Layout = iota
	LayoutNarrow
)

func (l Layout) String() string {
	if l == LayoutNarrow {
		return "narrow"
	}
	return "wide"
}

// DefaultBreakpoint is the column count below which layouts are narrow.
const DefaultBreakpoint = 90

// Responsive picks between a narrow and a wide rendering from the current
// viewport width. It holds no state; callers classify once per render.
type Responsive struct {
	Breakpoint int
}

// Classify returns the layout for width.
func (r Responsive) Classify(width int) Layout {
	bp := r.Breakpoint
	if bp <= 0 {
		bp = DefaultBreakpoint
	}
	if width < bp {
		return LayoutNarrow
	}
	return LayoutWide
}

// Narrow reports whether width is below the breakpoint.
func (r Responsive) Narrow(width int) bool {
	return r.Classify(width) == LayoutNarrow
}

// Render calls exactly one of narrow or wide.
func (r Responsive) Render(width int, narrow, wide func() string) string {
	if r.Narrow(width) {
		return narrow()
	}
	return wide()
}
