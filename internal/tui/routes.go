package tui

import "strings"

type routeSpec struct {
	ID      string
	Title   string
	Pattern string
}

const (
	screenLanding  = "landing"
	screenAuth     = "auth"
	screenSignup   = "signup"
	screenForgot   = "forgot"
	screenStudent  = "student"
	screenCreator  = "creator"
	screenBrand    = "brand"
	screenNotFound = "notfound"
)

// Route paths the screens navigate to.
const (
	pathLanding         = "/"
	pathAuth            = "/auth"
	pathForgotPassword  = "/forgot-password"
	pathStudentVerify   = "/student-verify"
	pathCreatorHome     = "/creator/dashboard"
	pathBrandHome       = "/brand/dashboard"
	pathSignupPrefix    = "/signup/"
	paramRole           = "role"
	paramShellComponent = "component"
)

// routeSpecs is matched in order; the first pattern that fits wins and
// anything left over is the not found screen.
var routeSpecs = []routeSpec{
	{ID: screenLanding, Title: "Início", Pattern: "/"},
	{ID: screenAuth, Title: "Como você quer entrar?", Pattern: "/auth"},
	{ID: screenSignup, Title: "Cadastro", Pattern: "/signup/:role"},
	{ID: screenForgot, Title: "Esqueceu sua senha?", Pattern: "/forgot-password"},
	{ID: screenStudent, Title: "Verificação de estudante", Pattern: "/student-verify"},
	{ID: screenCreator, Title: "Creator", Pattern: "/creator"},
	{ID: screenCreator, Title: "Creator", Pattern: "/creator/:component"},
	{ID: screenBrand, Title: "Brand", Pattern: "/brand"},
	{ID: screenBrand, Title: "Brand", Pattern: "/brand/:component"},
}

var screenIDOrder = []string{
	screenLanding,
	screenAuth,
	screenSignup,
	screenForgot,
	screenStudent,
	screenCreator,
	screenBrand,
	screenNotFound,
}

func screenTitle(id string) string {
	if id == screenNotFound {
		return "Página não encontrada"
	}
	for _, spec := range routeSpecs {
		if spec.ID == id {
			return spec.Title
		}
	}
	return id
}

// match resolves path against the route table.
func match(path string) (string, map[string]string) {
	path = normalizePath(path)
	for _, spec := range routeSpecs {
		if params, ok := matchPattern(spec.Pattern, path); ok {
			return spec.ID, params
		}
	}
	return screenNotFound, map[string]string{}
}

func matchPattern(pattern, path string) (map[string]string, bool) {
	want := splitPath(pattern)
	have := splitPath(path)
	if len(want) != len(have) {
		return nil, false
	}
	params := map[string]string{}
	for i, seg := range want {
		if name, ok := strings.CutPrefix(seg, ":"); ok {
			if have[i] == "" {
				return nil, false
			}
			params[name] = have[i]
			continue
		}
		if seg != have[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		return "/"
	}
	return path
}

func signupPath(role string) string {
	return pathSignupPrefix + role
}

// signupDestination is where a new account lands.
func signupDestination(role string, isStudent bool) string {
	switch {
	case isStudent:
		return pathStudentVerify
	case role == "creator":
		return pathCreatorHome
	default:
		return pathBrandHome
	}
}

// signinDestination is where a returning account lands.
func signinDestination(role string) string {
	if role == "brand" {
		return pathBrandHome
	}
	return pathCreatorHome
}
