package tui

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SimoKiihamaki/nexa/internal/shell"
)

func TestRoleRegistriesCoverDeclaredKeys(t *testing.T) {
	t.Parallel()

	cases := []struct {
		role         string
		nav          []shell.NavEntry
		registry     func(*deps) *shell.Registry[view]
		unregistered []shell.ViewKey
	}{
		{
			role:     "creator",
			nav:      creatorNav,
			registry: creatorRegistry,
			unregistered: []shell.ViewKey{
				shell.KeyMyApplications, shell.KeyConversations, shell.KeyMyPortfolio,
			},
		},
		{
			role:     "brand",
			nav:      brandNav,
			registry: brandRegistry,
			unregistered: []shell.ViewKey{
				shell.KeyNewCampaign, shell.KeyConversations, shell.KeyPayment,
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.role, func(t *testing.T) {
			t.Parallel()

			reg := tc.registry(testDeps(t))
			inNav := map[shell.ViewKey]bool{}
			for _, e := range tc.nav {
				if !e.Key.Declared() {
					t.Fatalf("expected nav key %q to be declared", e.Key)
				}
				inNav[e.Key] = true
			}

			for _, k := range shell.AllKeys() {
				pinned := slices.Contains(tc.unregistered, k)
				switch {
				case reg.Has(k) && !inNav[k]:
					t.Fatalf("expected registered key %q to have a nav entry", k)
				case reg.Has(k) && pinned:
					t.Fatalf("expected %q off the unregistered list once it has a view", k)
				case inNav[k] && !reg.Has(k) && !pinned:
					t.Fatalf("expected nav key %q to be registered or listed as unregistered", k)
				}
			}

			if diff := cmp.Diff(tc.unregistered, reg.Unregistered(tc.nav)); diff != "" {
				t.Fatalf("unregistered mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShellConfigUsesPalette(t *testing.T) {
	t.Parallel()

	cfg := shellConfig(testDeps(t), shell.RoleBrand)
	if cfg.NavStyles == nil {
		t.Fatal("expected shell config to carry nav styles")
	}
	if got := cfg.NavStyles.Current.GetForeground(); got != colPink {
		t.Fatalf("expected current entry in %v, got %v", colPink, got)
	}
}
