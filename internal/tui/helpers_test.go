package tui

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapIndex(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		current int
		delta   int
		n       int
		expect  int
		valid   bool
	}{
		{
			name:    "forward navigation",
			current: 0,
			delta:   1,
			n:       3,
			expect:  1,
			valid:   true,
		},
		{
			name:    "backward navigation",
			current: 1,
			delta:   -1,
			n:       3,
			expect:  0,
			valid:   true,
		},
		{
			name:    "wrap around negative",
			current: 0,
			delta:   -1,
			n:       3,
			expect:  2,
			valid:   true,
		},
		{
			name:    "wrap around positive",
			current: 2,
			delta:   1,
			n:       3,
			expect:  0,
			valid:   true,
		},
		{
			name:    "no change",
			current: 1,
			delta:   0,
			n:       3,
			expect:  1,
			valid:   true,
		},

		{
			name:    "invalid n (zero)",
			current: 0,
			delta:   1,
			n:       0,
			expect:  0,
			valid:   false,
		},
		{
			name:    "invalid n (negative)",
			current: 0,
			delta:   1,
			n:       -1,
			expect:  0,
			valid:   false,
		},
		{
			name:    "current out of bounds (negative)",
			current: -1,
			delta:   1,
			n:       3,
			expect:  0,
			valid:   false,
		},
		{
			name:    "current out of bounds (too large)",
			current: 3,
			delta:   1,
			n:       3,
			expect:  0,
			valid:   false,
		},

		{
			name:    "large positive delta",
			current: 1,
			delta:   100,
			n:       3,
			expect:  2, // (1 + 100) % 3 = 101 % 3 = 2
			valid:   true,
		},
		{
			name:    "large negative delta",
			current: 1,
			delta:   -100,
			n:       3,
			expect:  0, // (1 - 100) % 3 = -99 % 3 = 0
			valid:   true,
		},

		{
			name:    "overflow protection triggers",
			current: 1,
			delta:   math.MaxInt,
			n:       3,
			expect:  0,
			valid:   false,
		},
		{
			name:    "overflow protection with zero current",
			current: 0,
			delta:   math.MaxInt,
			n:       3,
			expect:  1, // (0 + math.MaxInt) % 3 = 1
			valid:   true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, valid := wrapIndex(tc.current, tc.delta, tc.n)

			if result != tc.expect {
				t.Errorf("expected result %d, got %d", tc.expect, result)
			}
			if valid != tc.valid {
				t.Errorf("expected valid %t, got %t", tc.valid, valid)
			}
		})
	}
}

func TestOpenArgs(t *testing.T) {
	t.Parallel()

	const url = "https://nexa.example"
	testCases := []struct {
		name       string
		configured string
		goos       string
		want       []string
		wantErr    bool
	}{
		{name: "darwin default", goos: "darwin", want: []string{"open", url}},
		{name: "windows default", goos: "windows", want: []string{"rundll32", "url.dll,FileProtocolHandler", url}},
		{name: "linux default", goos: "linux", want: []string{"xdg-open", url}},
		{name: "configured appends url", configured: "firefox --new-tab", goos: "linux", want: []string{"firefox", "--new-tab", url}},
		{name: "configured placeholder", configured: `sh -c "echo {url}"`, goos: "linux", want: []string{"sh", "-c", "echo " + url}},
		{name: "unterminated quote", configured: `open "x`, goos: "linux", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := openArgs(tc.configured, url, tc.goos)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("argv mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOpenURLUsesRunner(t *testing.T) {
	t.Parallel()

	var gotName string
	var gotArgs []string
	d := &deps{runner: func(name string, args ...string) error {
		gotName, gotArgs = name, args
		return nil
	}}
	d.cfg.OpenCommand = "browser"
	if err := d.openURL("https://nexa.example"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "browser" {
		t.Fatalf("expected browser, got %q", gotName)
	}
	if diff := cmp.Diff([]string{"https://nexa.example"}, gotArgs); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}

	d.runner = func(string, ...string) error { return errors.New("boom") }
	if err := d.openURL("https://nexa.example"); err == nil {
		t.Fatal("expected runner error to be returned")
	}
}

func TestCopyTextEmpty(t *testing.T) {
	t.Parallel()

	note, failed := copyText("", "Erro")
	if failed {
		t.Fatal("expected empty copy not to be a failure")
	}
	if note != "Nada para copiar" {
		t.Fatalf("expected nothing-to-copy note, got %q", note)
	}
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	if got := truncateText("olá mundo", 20); got != "olá mundo" {
		t.Fatalf("expected text unchanged, got %q", got)
	}
	if got := truncateText("olá mundo", 4); got != "olá…" {
		t.Fatalf("expected rune-aware truncation, got %q", got)
	}
	if got := truncateText("abc", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
