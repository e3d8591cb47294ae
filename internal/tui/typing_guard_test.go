package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// stubScreen records what the dispatcher hands it.
type stubScreen struct {
	typing  bool
	handles map[Action]bool
	actions []Action
	updates []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) HandleAction(act Action) (bool, tea.Cmd) {
	s.actions = append(s.actions, act)
	return s.handles[act], nil
}

func (s *stubScreen) Update(msg tea.Msg) tea.Cmd {
	s.updates = append(s.updates, msg)
	return nil
}

func (s *stubScreen) View() string { return "stub" }

func (s *stubScreen) SetSize(int, int) {}

func (s *stubScreen) Typing() bool { return s.typing }

func withStub(t *testing.T, screenID string, stub *stubScreen) model {
	t.Helper()
	m, _, _ := newTestModel(t, "/")
	m.screenID = screenID
	m.screen = stub
	return m
}

func TestTypingGuardBlocksSingleLetterGlobals(t *testing.T) {
	t.Parallel()

	stub := &stubScreen{typing: true}
	m := withStub(t, screenSignup, stub)

	m, cmd := press(t, m, runeKey('q'))
	if isQuit(cmd) {
		t.Fatal("expected q to be typed, not quit")
	}
	if len(stub.updates) != 1 {
		t.Fatalf("expected the key to reach the screen, got %d updates", len(stub.updates))
	}

	m, _ = press(t, m, runeKey('?'))
	if m.showHelp {
		t.Fatal("expected ? to be typed while a field has focus")
	}
}

func TestTypingGuardAllowsGlobalsWhenIdle(t *testing.T) {
	t.Parallel()

	stub := &stubScreen{}
	m := withStub(t, screenLanding, stub)

	m, _ = press(t, m, runeKey('?'))
	if !m.showHelp {
		t.Fatal("expected ? to open help")
	}
	m, _ = press(t, m, escKey())
	if m.showHelp {
		t.Fatal("expected esc to close help")
	}
	_, cmd := press(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Fatal("expected q to quit")
	}
}

func TestTypingGuardSkipsSensitiveScreenActions(t *testing.T) {
	t.Parallel()

	stub := &stubScreen{typing: true, handles: map[Action]bool{ActToggleMenu: true, ActGotoEntry2: true}}
	m := withStub(t, screenCreator, stub)

	m, _ = press(t, m, runeKey('m'))
	m, _ = press(t, m, altKey('2'))
	if len(stub.actions) != 0 {
		t.Fatalf("expected no actions while typing, got %v", stub.actions)
	}
	if len(stub.updates) != 2 {
		t.Fatalf("expected both keys forwarded, got %d", len(stub.updates))
	}

	stub.typing = false
	_, _ = press(t, m, runeKey('m'))
	if len(stub.actions) != 1 || stub.actions[0] != ActToggleMenu {
		t.Fatalf("expected toggle menu once idle, got %v", stub.actions)
	}
}

func TestCtrlCQuitsWhileTyping(t *testing.T) {
	t.Parallel()

	m := withStub(t, screenSignup, &stubScreen{typing: true})
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("expected ctrl+c to quit")
	}
}

func TestScreenActionWinsOverGlobal(t *testing.T) {
	t.Parallel()

	stub := &stubScreen{handles: map[Action]bool{ActCancel: true}}
	m := withStub(t, screenCreator, stub)
	m.history = []string{"/auth"}

	m, cmd := press(t, m, escKey())
	if cmd != nil {
		t.Fatal("expected handled esc to produce no back command")
	}
	if len(m.history) != 1 {
		t.Fatalf("expected history untouched, got %v", m.history)
	}

	stub.handles = nil
	_, cmd = press(t, m, escKey())
	msgs := messages(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected a back message, got %v", msgs)
	}
	if _, ok := msgs[0].(backMsg); !ok {
		t.Fatalf("expected backMsg, got %T", msgs[0])
	}
}

func TestThemeToggleCyclesPreference(t *testing.T) {
	t.Parallel()

	m := withStub(t, screenLanding, &stubScreen{typing: true})
	st := m.d.store

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if got := st.State().User.Preferences.Theme; got != "light" {
		t.Fatalf("expected light after system, got %q", got)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if got := st.State().User.Preferences.Theme; got != "dark" {
		t.Fatalf("expected dark, got %q", got)
	}
	if m.toast == nil || m.toast.message != "Tema: ☾ escuro" {
		t.Fatalf("expected theme toast, got %+v", m.toast)
	}
}
