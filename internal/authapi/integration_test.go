package authapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/SimoKiihamaki/nexa/internal/api"
	"github.com/SimoKiihamaki/nexa/internal/authapi"
)

func TestClientAgainstDevBackend(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(api.NewHandler(api.Dependencies{
		UserRepo:    api.NewInMemoryUserRepository(api.RepositoryOptions{BcryptCost: bcrypt.MinCost}),
		RateLimiter: api.NewRateLimiter(6000, 1000),
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	c := authapi.New(srv.URL)

	created, err := c.Signup(ctx, authapi.SignupRequest{
		Name: "Ana Souza", Email: "ana@nexa.com", Password: "Abcdef1!", ConfirmPassword: "Abcdef1!", Role: "creator",
	})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if created.User.Name != "Ana Souza" || created.Token == "" {
		t.Fatalf("unexpected signup response %+v", created)
	}

	session, err := c.Signin(ctx, authapi.SigninRequest{Email: "ana@nexa.com", Password: "Abcdef1!"})
	if err != nil {
		t.Fatalf("Signin: %v", err)
	}

	updated, err := c.ProfileUpdate(ctx, session.Token, authapi.ProfileUpdateRequest{Name: "Ana Lima"})
	if err != nil {
		t.Fatalf("ProfileUpdate: %v", err)
	}
	if updated.User.Name != "Ana Lima" {
		t.Fatalf("expected Ana Lima, got %+v", updated.User)
	}

	if _, err := c.ForgotPassword(ctx, authapi.ForgotPasswordRequest{Email: "ana@nexa.com"}); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}

	_, err = c.Signin(ctx, authapi.SigninRequest{Email: "ana@nexa.com", Password: "wrong"})
	var apiErr *authapi.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}

	_, err = c.ProfileUpdate(ctx, "", authapi.ProfileUpdateRequest{Name: "x"})
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %v", err)
	}
}
