// Package authapi is a thin client for the Nexa auth service. Each call sends
// one JSON record and returns the decoded response; there are no retries.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/forms"
)

const (
	pathSignup         = "/signup"
	pathSignin         = "/signin"
	pathProfile        = "/profile"
	pathForgotPassword = "/forgot-password"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 15 * time.Second

	maxErrorBody = 64 << 10
)

// ErrNotConfigured is returned when no backend URL was supplied.
var ErrNotConfigured = errors.New("authapi: backend url not configured")

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient supplies the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger for request failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client talks to <backend>/auth.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New returns a client for backendURL. An empty backendURL yields a client
// whose calls fail with ErrNotConfigured.
func New(backendURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: authBase(backendURL),
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func authBase(backendURL string) string {
	backendURL = strings.TrimRight(strings.TrimSpace(backendURL), "/")
	if backendURL == "" {
		return ""
	}
	return backendURL + "/auth"
}

// Configured reports whether a backend URL was supplied.
func (c *Client) Configured() bool { return c.baseURL != "" }

// BaseURL returns the auth endpoint root.
func (c *Client) BaseURL() string { return c.baseURL }

// Signup creates an account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, pathSignup, "", req, &out)
	return out, err
}

// Signin exchanges credentials for a session token.
func (c *Client) Signin(ctx context.Context, req SigninRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, pathSignin, "", req, &out)
	return out, err
}

// ProfileUpdate changes the signed-in user's profile. token may be empty, in
// which case the backend decides whether the call is allowed.
func (c *Client) ProfileUpdate(ctx context.Context, token string, req ProfileUpdateRequest) (ProfileResponse, error) {
	var out ProfileResponse
	err := c.do(ctx, http.MethodPut, pathProfile, token, req, &out)
	return out, err
}

// ForgotPassword asks the backend to email a reset link.
func (c *Client) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (MessageResponse, error) {
	var out MessageResponse
	err := c.do(ctx, http.MethodPost, pathForgotPassword, "", req, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("authapi: encode %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("authapi: build %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("auth request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("authapi: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp)
		c.logger.Info("auth request rejected",
			zap.String("path", path),
			zap.Int("status", apiErr.Status),
			zap.String("message", apiErr.Message))
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("authapi: decode %s: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Fields = body.Fields
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(raw))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

// Message extracts a user-facing message from err, preferring the first field
// error of an APIError or of a local validation failure.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var fieldErrs forms.Errors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Message
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) > 0 {
			return apiErr.Fields[0].Message
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return err.Error()
}
