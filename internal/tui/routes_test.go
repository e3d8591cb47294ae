package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchRoutes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		path   string
		id     string
		params map[string]string
	}{
		{path: "/", id: screenLanding, params: map[string]string{}},
		{path: "", id: screenLanding, params: map[string]string{}},
		{path: "/auth", id: screenAuth, params: map[string]string{}},
		{path: "/auth/", id: screenAuth, params: map[string]string{}},
		{path: "/signup/creator", id: screenSignup, params: map[string]string{"role": "creator"}},
		{path: "/signup/brand?ref=x", id: screenSignup, params: map[string]string{"role": "brand"}},
		{path: "/forgot-password", id: screenForgot, params: map[string]string{}},
		{path: "/student-verify", id: screenStudent, params: map[string]string{}},
		{path: "/creator", id: screenCreator, params: map[string]string{}},
		{path: "/creator/dashboard", id: screenCreator, params: map[string]string{"component": "dashboard"}},
		{path: "/brand/dashboard", id: screenBrand, params: map[string]string{"component": "dashboard"}},
		{path: "/signup", id: screenNotFound, params: map[string]string{}},
		{path: "/creator/a/b", id: screenNotFound, params: map[string]string{}},
		{path: "/nowhere", id: screenNotFound, params: map[string]string{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			id, params := match(tc.path)
			if id != tc.id {
				t.Fatalf("expected screen %q, got %q", tc.id, id)
			}
			if diff := cmp.Diff(tc.params, params); diff != "" {
				t.Fatalf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSignupDestination(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		role      string
		isStudent bool
		want      string
	}{
		{role: "creator", isStudent: true, want: pathStudentVerify},
		{role: "creator", want: pathCreatorHome},
		{role: "brand", want: pathBrandHome},
		{role: "", want: pathBrandHome},
	}
	for _, tc := range testCases {
		if got := signupDestination(tc.role, tc.isStudent); got != tc.want {
			t.Fatalf("signupDestination(%q, %t): expected %q, got %q", tc.role, tc.isStudent, tc.want, got)
		}
	}
}

func TestSigninDestination(t *testing.T) {
	t.Parallel()

	if got := signinDestination("brand"); got != pathBrandHome {
		t.Fatalf("expected %q, got %q", pathBrandHome, got)
	}
	for _, role := range []string{"creator", "", "admin"} {
		if got := signinDestination(role); got != pathCreatorHome {
			t.Fatalf("signinDestination(%q): expected %q, got %q", role, pathCreatorHome, got)
		}
	}
}

func TestEveryScreenHasTitle(t *testing.T) {
	t.Parallel()

	for _, id := range screenIDOrder {
		if screenTitle(id) == id {
			t.Fatalf("expected a title for screen %q", id)
		}
	}
}
