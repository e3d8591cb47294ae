package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string { return &s }

func TestInitialPreferences(t *testing.T) {
	t.Parallel()

	want := Preferences{Theme: ThemeSystem, Notifications: true, EmailUpdates: true}
	if diff := cmp.Diff(want, Initial().User.Preferences); diff != "" {
		t.Fatalf("initial preferences mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthFlow(t *testing.T) {
	t.Parallel()

	s := Reduce(Initial(), LoginStart{})
	if !s.Auth.IsLoading {
		t.Fatalf("expected loading after LoginStart")
	}

	user := User{ID: "u1", Email: "ana@nexa.com", Name: "Ana Souza", Role: "creator"}
	s = Reduce(s, LoginSuccess{User: user, Token: "tok"})
	want := AuthState{User: &user, Token: "tok", IsAuthenticated: true}
	if diff := cmp.Diff(want, s.Auth); diff != "" {
		t.Fatalf("auth state mismatch (-want +got):\n%s", diff)
	}
	if s.User.Profile == nil || s.User.Profile.Name != "Ana Souza" {
		t.Fatalf("expected profile seeded from login, got %+v", s.User.Profile)
	}

	s = Reduce(s, Logout{})
	if diff := cmp.Diff(AuthState{}, s.Auth); diff != "" {
		t.Fatalf("expected cleared auth (-want +got):\n%s", diff)
	}
	if s.User.Profile != nil {
		t.Fatalf("expected profile cleared on logout")
	}
}

func TestLoginFailureClearsSession(t *testing.T) {
	t.Parallel()

	s := Reduce(Initial(), LoginSuccess{User: User{ID: "u1"}, Token: "tok"})
	s = Reduce(s, LoginFailure{Err: "Login failed"})
	want := AuthState{Error: "Login failed"}
	if diff := cmp.Diff(want, s.Auth); diff != "" {
		t.Fatalf("auth state mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileLifecycle(t *testing.T) {
	t.Parallel()

	s := Reduce(Initial(), UpdateProfile{Patch: ProfilePatch{Name: strPtr("ignored")}})
	if s.User.Profile != nil {
		t.Fatalf("update without a profile should be a no-op")
	}

	s = Reduce(s, FetchProfileStart{})
	if !s.User.IsLoading {
		t.Fatalf("expected loading")
	}
	s = Reduce(s, FetchProfileSuccess{Profile: Profile{ID: "p1", Name: "Ana", Email: "a@b.c"}})
	s = Reduce(s, UpdateProfile{Patch: ProfilePatch{
		Bio:         strPtr("criadora"),
		SocialLinks: &SocialLinks{Instagram: "@ana"},
	}})

	want := &Profile{ID: "p1", Name: "Ana", Email: "a@b.c", Bio: "criadora", SocialLinks: SocialLinks{Instagram: "@ana"}}
	if diff := cmp.Diff(want, s.User.Profile); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}

	s = Reduce(s, FetchProfileFailure{Err: "boom"})
	if s.User.Error != "boom" || s.User.IsLoading {
		t.Fatalf("expected error state, got %+v", s.User)
	}
	s = Reduce(s, ClearUserError{})
	if s.User.Error != "" {
		t.Fatalf("expected error cleared")
	}
}

func TestUpdatePreferencesIsPartial(t *testing.T) {
	t.Parallel()

	dark := ThemeDark
	off := false
	s := Reduce(Initial(), UpdatePreferences{Patch: PreferencesPatch{Theme: &dark}})
	s = Reduce(s, UpdatePreferences{Patch: PreferencesPatch{EmailUpdates: &off}})

	want := Preferences{Theme: ThemeDark, Notifications: true, EmailUpdates: false}
	if diff := cmp.Diff(want, s.User.Preferences); diff != "" {
		t.Fatalf("preferences mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	before := Reduce(Initial(), FetchProfileSuccess{Profile: Profile{ID: "p1", Name: "Ana"}})
	after := Reduce(before, UpdateProfile{Patch: ProfilePatch{Name: strPtr("Bia")}})
	if before.User.Profile.Name != "Ana" {
		t.Fatalf("input state mutated: %q", before.User.Profile.Name)
	}
	if after.User.Profile.Name != "Bia" {
		t.Fatalf("expected Bia, got %q", after.User.Profile.Name)
	}
}

func TestThemeResolution(t *testing.T) {
	t.Parallel()

	cases := []struct {
		theme      Theme
		systemDark bool
		want       bool
	}{
		{ThemeDark, false, true},
		{ThemeLight, true, false},
		{ThemeSystem, true, true},
		{ThemeSystem, false, false},
	}
	for _, tc := range cases {
		if got := tc.theme.IsDark(tc.systemDark); got != tc.want {
			t.Fatalf("%s/%v: expected %v, got %v", tc.theme, tc.systemDark, tc.want, got)
		}
	}
	if ThemeLight.Next() != ThemeDark || ThemeDark.Next() != ThemeSystem || ThemeSystem.Next() != ThemeLight {
		t.Fatalf("unexpected theme cycle")
	}
}
