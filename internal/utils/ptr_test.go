package utils

import "testing"

func TestPointerHelpers(t *testing.T) {
	t.Parallel()

	b := BoolPtr(true)
	if b == nil || !*b {
		t.Fatalf("expected pointer to true, got %v", b)
	}
	i := IntPtr(0)
	if i == nil || *i != 0 {
		t.Fatalf("expected pointer to 0, got %v", i)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	if got := FirstNonEmpty("", "a", "b"); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := FirstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
