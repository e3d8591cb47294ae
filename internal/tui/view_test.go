package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/SimoKiihamaki/nexa/internal/store"
)

func TestRenderHeader(t *testing.T) {
	t.Parallel()

	st := store.Initial()
	wide := renderHeader(st, "Creator", 120, false)
	for _, want := range []string{"NEXA", "Creator", "◐ sistema", "Visitante"} {
		if !strings.Contains(wide, want) {
			t.Fatalf("expected header to contain %q, got %q", want, wide)
		}
	}
	if strings.Contains(wide, "m menu") {
		t.Fatal("expected no menu hint on wide layouts")
	}

	st.Auth.User = &store.User{Email: "ana@example.com"}
	st.User.Preferences.Theme = store.ThemeDark
	narrow := renderHeader(st, "Brand", 60, true)
	for _, want := range []string{"m menu", "☾ escuro", "ana@example.com"} {
		if !strings.Contains(narrow, want) {
			t.Fatalf("expected narrow header to contain %q, got %q", want, narrow)
		}
	}
}

func TestHelpOverlayListsScreenBindings(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, pathCreatorHome)
	m = resize(t, m, 120, 40)
	m, _ = press(t, m, runeKey('?'))
	out := m.View()
	for _, want := range []string{"Global", "Alternar tema", "Trocar categoria", "Sair da conta"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected help overlay to contain %q", want)
		}
	}
}

func TestStatusBarShowsToastOrHint(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, "/auth")
	m = resize(t, m, 100, 30)
	if !strings.Contains(m.View(), "? atalhos") {
		t.Fatal("expected key hint without a toast")
	}
	_ = m.setStatus("Perfil atualizado", false)
	if !strings.Contains(m.View(), "Perfil atualizado") {
		t.Fatal("expected toast in the status bar")
	}
}

func TestClassifyStatusStyle(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		text string
		want lipgloss.Style
	}{
		{text: "Falha ao abrir o site", want: statusErrorStyle},
		{text: "Modo offline: sessão local", want: statusWarnStyle},
		{text: "Perfil salvo localmente", want: statusSuccessStyle},
		{text: "Abrindo https://nexa.example", want: statusInfoStyle},
	}
	for _, tc := range testCases {
		if got := classifyStatusStyle(tc.text).GetForeground(); got != tc.want.GetForeground() {
			t.Fatalf("%q: expected foreground %v, got %v", tc.text, tc.want.GetForeground(), got)
		}
	}
}

func TestViewFitsWindowHeight(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel(t, pathCreatorHome)
	m = resize(t, m, 100, 20)
	if got := strings.Count(m.View(), "\n") + 1; got != 20 {
		t.Fatalf("expected 20 lines, got %d", got)
	}
}
