package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
)

func testRouter(repo UserRepository) http.Handler {
	return newRouter(Dependencies{
		UserRepo:    repo,
		RateLimiter: NewRateLimiter(6000, 1000),
		ExposeUsers: true,
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	router := newRouter(Dependencies{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("expected security headers on every response")
	}
}

func TestSignupSigninProfileFlow(t *testing.T) {
	router := testRouter(setupTestRepo())

	rr := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]any{
		"name": "Ana Souza", "email": "ana@nexa.com", "password": "Abcdef1!", "role": "creator", "isStudent": true,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created authapi.AuthResponse
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Token == "" || created.User.Role != "creator" {
		t.Fatalf("unexpected signup response %+v", created)
	}

	rr = doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]any{
		"name": "Ana Souza", "email": "ana@nexa.com", "password": "Abcdef1!", "role": "creator",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rr.Code)
	}

	rr = doJSON(t, router, http.MethodPost, "/auth/signin", "", map[string]any{"email": "ana@nexa.com", "password": "Abcdef1!"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var session authapi.AuthResponse
	_ = json.NewDecoder(rr.Body).Decode(&session)

	rr = doJSON(t, router, http.MethodPut, "/auth/profile", session.Token, map[string]any{"name": "Ana Lima", "bio": "<script>x</script>criadora"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var profile authapi.ProfileResponse
	_ = json.NewDecoder(rr.Body).Decode(&profile)
	if profile.User.Name != "Ana Lima" {
		t.Fatalf("expected updated name, got %+v", profile)
	}
}

func TestSignupValidationErrors(t *testing.T) {
	router := testRouter(setupTestRepo())

	rr := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]any{
		"name": "Ana", "email": "ana", "password": "weak", "role": "admin",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	fields := map[string]string{}
	for _, f := range body.Fields {
		fields[f.Field] = f.Message
	}
	for _, want := range []string{"name", "email", "password", "role"} {
		if fields[want] == "" {
			t.Fatalf("expected error for %s, got %v", want, fields)
		}
	}
}

func TestSigninRejectsBadCredentials(t *testing.T) {
	router := testRouter(setupTestRepo())

	rr := doJSON(t, router, http.MethodPost, "/auth/signin", "", map[string]any{"email": "ghost@nexa.com", "password": "x"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	router := testRouter(setupTestRepo())

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"scheme", "Basic abc"},
		{"token", "Bearer nope"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPut, "/auth/profile", strings.NewReader(`{}`))
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rr.Code)
		}
	}
}

func TestProfilePasswordChange(t *testing.T) {
	router := testRouter(setupTestRepo())

	rr := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]any{
		"name": "Marca Boa", "email": "brand@nexa.com", "password": "Abcdef1!", "role": "brand", "isStudent": true,
	})
	var session authapi.AuthResponse
	_ = json.NewDecoder(rr.Body).Decode(&session)

	rr = doJSON(t, router, http.MethodPut, "/auth/profile", session.Token, map[string]any{"oldPassword": "wrong", "newPassword": "Zyxwvu9?"})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for wrong current password, got %d", rr.Code)
	}
	rr = doJSON(t, router, http.MethodPut, "/auth/profile", session.Token, map[string]any{"oldPassword": "Abcdef1!", "newPassword": "weak"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak new password, got %d", rr.Code)
	}
	rr = doJSON(t, router, http.MethodPut, "/auth/profile", session.Token, map[string]any{"oldPassword": "Abcdef1!", "newPassword": "Zyxwvu9?"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestForgotPassword(t *testing.T) {
	repo := setupTestRepo()
	router := testRouter(repo)

	rr := doJSON(t, router, http.MethodPost, "/auth/forgot-password", "", map[string]any{"email": "nope"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	rr = doJSON(t, router, http.MethodPost, "/auth/forgot-password", "", map[string]any{"email": "ghost@nexa.com"})
	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202 for unknown email, got %d", rr.Code)
	}
}

func TestListUsersHandler_Pagination(t *testing.T) {
	router := testRouter(setupTestRepo())
	for _, email := range []string{"a@nexa.com", "b@nexa.com", "c@nexa.com"} {
		rr := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]any{
			"name": "Ana Souza", "email": email, "password": "Abcdef1!", "role": "brand",
		})
		if rr.Code != http.StatusCreated {
			t.Fatalf("signup %s: %d", email, rr.Code)
		}
	}

	rr := doJSON(t, router, http.MethodGet, "/dev/users?page=1&page_size=2", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var body struct {
		Data       []authapi.User `json:"data"`
		Pagination Pagination     `json:"pagination"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Data) != 2 || body.Data[0].Email != "a@nexa.com" {
		t.Fatalf("unexpected page %+v", body.Data)
	}
	if body.Pagination.TotalItems != 3 {
		t.Fatalf("expected TotalItems=3 got %d", body.Pagination.TotalItems)
	}

	rr = doJSON(t, router, http.MethodGet, "/dev/users?page=0", "", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for page=0, got %d", rr.Code)
	}
}

func TestDevUsersHiddenByDefault(t *testing.T) {
	router := newRouter(Dependencies{UserRepo: setupTestRepo(), RateLimiter: NewRateLimiter(6000, 1000)})

	rr := doJSON(t, router, http.MethodGet, "/dev/users", "", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
