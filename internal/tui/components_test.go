package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderStepsMarksProgress(t *testing.T) {
	t.Parallel()

	out := renderSteps([]string{"Conta", "Verificação", "Painel"}, 1)
	for _, want := range []string{"✓ Conta", "● Verificação", "○ Painel"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRenderBarFillsWidth(t *testing.T) {
	t.Parallel()

	left := []segment{{text: "NEXA", style: logoStyle}}
	right := []segment{{text: "Ana", style: headerUserStyle}}
	if got := lipgloss.Width(renderBar(60, left, right)); got != 60 {
		t.Fatalf("expected bar width 60, got %d", got)
	}

	tight := renderBar(4, left, right)
	if !strings.Contains(tight, "NEXA") || !strings.Contains(tight, "Ana") {
		t.Fatalf("expected both sides when the bar overflows, got %q", tight)
	}
}

func TestRenderChoice(t *testing.T) {
	t.Parallel()

	if got := renderChoice("Ordenar", campaignSorts, 1); !strings.Contains(got, "["+campaignSorts[1]+"]") {
		t.Fatalf("expected selected sort in brackets, got %q", got)
	}
	if got := renderChoice("Ordenar", campaignSorts, 99); !strings.Contains(got, "[]") {
		t.Fatalf("expected empty value for out of range selection, got %q", got)
	}
}

func TestRenderProfileCardAlignsFields(t *testing.T) {
	t.Parallel()

	out := renderProfileCard("Profile", "Ana", []field{
		{"State", "SP"},
		{"Languages", "Portuguese"},
	}, 40)
	if !strings.Contains(out, "State      SP") {
		t.Fatalf("expected values aligned after the longest label, got %q", out)
	}
	if got := lipgloss.Width(out); got != 40 {
		t.Fatalf("expected card width 40, got %d", got)
	}
}

func TestStatusLineAndStatusCommandCoexist(t *testing.T) {
	t.Parallel()

	if got := statusLine(statusError, "Falhou"); !strings.Contains(got, "✗ Falhou") {
		t.Fatalf("expected error marker, got %q", got)
	}
	if got := statusLine(statusInfo, "Salvando…"); !strings.Contains(got, "● Salvando…") {
		t.Fatalf("expected info marker, got %q", got)
	}

	msg, ok := statusErr("Falhou")().(statusMsg)
	if !ok || !msg.isErr || msg.note != "Falhou" {
		t.Fatalf("expected error status message, got %#v", msg)
	}
}
