package shell

import (
	"strings"
	"testing"
)

func creatorEntries() []NavEntry {
	return []NavEntry{
		{Label: "Início", Icon: "⌂", Key: KeyDashboard},
		{Label: "Minhas Aplicações", Icon: "☰", Key: KeyMyApplications},
		{Label: "Conversas", Icon: "✉", Key: KeyConversations},
		{Label: "Minha Conta", Icon: "☺", Key: KeyMyAccount},
		{Label: "Meu Portfólio", Icon: "★", Key: KeyMyPortfolio},
	}
}

func TestNavPanelActivateInvokesCallback(t *testing.T) {
	t.Parallel()

	var got []ViewKey
	n := NewNavPanel(creatorEntries(), func(k ViewKey) { got = append(got, k) })
	n.MoveDown()
	n.MoveDown()
	key, ok := n.Activate()
	if !ok || key != KeyConversations {
		t.Fatalf("expected conversations, got %q (%v)", key, ok)
	}
	if len(got) != 1 || got[0] != KeyConversations {
		t.Fatalf("expected callback with conversations, got %v", got)
	}
}

func TestNavPanelCursorWraps(t *testing.T) {
	t.Parallel()

	n := NewNavPanel(creatorEntries(), nil)
	n.MoveUp()
	if n.Cursor() != 4 {
		t.Fatalf("expected cursor to wrap to 4, got %d", n.Cursor())
	}
	n.MoveDown()
	if n.Cursor() != 0 {
		t.Fatalf("expected cursor to wrap to 0, got %d", n.Cursor())
	}
}

func TestNavPanelNarrowClosesAfterSelection(t *testing.T) {
	t.Parallel()

	n := NewNavPanel(creatorEntries(), nil)
	n.SetNarrow(true)
	if n.Visible() {
		t.Fatalf("closed overlay should not be visible")
	}
	n.Open()
	if !n.IsOpen() {
		t.Fatalf("expected overlay to open")
	}
	if !n.ChooseKey(KeyMyAccount) {
		t.Fatalf("expected my account to be found")
	}
	if n.IsOpen() {
		t.Fatalf("expected overlay to close after selection")
	}
}

func TestNavPanelWideHasNoOpenState(t *testing.T) {
	t.Parallel()

	n := NewNavPanel(creatorEntries(), nil)
	n.Open()
	if n.IsOpen() {
		t.Fatalf("wide panel should not report open")
	}
	if !n.Visible() {
		t.Fatalf("wide panel should always be visible")
	}

	n.SetNarrow(true)
	n.Open()
	n.SetNarrow(false)
	n.SetNarrow(true)
	if n.IsOpen() {
		t.Fatalf("switching to wide should drop the open flag")
	}
}

func TestNavPanelChooseOutOfRange(t *testing.T) {
	t.Parallel()

	called := false
	n := NewNavPanel(creatorEntries(), func(ViewKey) { called = true })
	if _, ok := n.Choose(99); ok {
		t.Fatalf("expected out of range choice to fail")
	}
	if n.ChooseKey(KeyPayment) {
		t.Fatalf("payment is not a creator entry")
	}
	if called {
		t.Fatalf("callback should not fire")
	}
}

func TestNavPanelRenderListsLabels(t *testing.T) {
	t.Parallel()

	n := NewNavPanel(creatorEntries(), nil)
	out := n.Render(KeyDashboard, SidebarWidth, 20)
	for _, e := range creatorEntries() {
		if !strings.Contains(out, e.Label) {
			t.Fatalf("expected %q in sidebar:\n%s", e.Label, out)
		}
	}

	n.SetNarrow(true)
	n.Open()
	out = n.Render(KeyDashboard, 60, 20)
	if !strings.Contains(out, "esc fechar") {
		t.Fatalf("expected overlay hint, got:\n%s", out)
	}
}

func TestResponsiveClassify(t *testing.T) {
	t.Parallel()

	r := Responsive{Breakpoint: 80}
	if r.Classify(79) != LayoutNarrow || r.Classify(80) != LayoutWide {
		t.Fatalf("unexpected classification around breakpoint")
	}
	if (Responsive{}).Classify(DefaultBreakpoint-1) != LayoutNarrow {
		t.Fatalf("zero breakpoint should use the default")
	}

	calls := ""
	out := r.Render(40, func() string { calls += "n"; return "narrow" }, func() string { calls += "w"; return "wide" })
	if out != "narrow" || calls != "n" {
		t.Fatalf("expected only the narrow branch, got %q calls=%q", out, calls)
	}
	if LayoutNarrow.String() != "narrow" || LayoutWide.String() != "wide" {
		t.Fatalf("unexpected layout names")
	}
}
