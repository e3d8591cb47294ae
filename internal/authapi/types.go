package authapi

import (
	"fmt"

	"github.com/SimoKiihamaki/nexa/internal/forms"
)

// Request bodies share their shape with the client-side form records.
type (
	SignupRequest         = forms.Signup
	SigninRequest         = forms.Signin
	ForgotPasswordRequest = forms.ForgotPassword
)

// User is the account as returned by the backend.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProfileUpdateRequest carries the profile fields to change. Empty fields are
// omitted and left untouched by the backend.
type ProfileUpdateRequest struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	State       string   `json:"state,omitempty"`
	Role        string   `json:"role,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Languages   []string `json:"languages,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	BrandName   string   `json:"brandName,omitempty"`
	CompanyName string   `json:"companyName,omitempty"`
	Instagram   string   `json:"instagram,omitempty"`
	Description string   `json:"description,omitempty"`
	OldPassword string   `json:"oldPassword,omitempty"`
	NewPassword string   `json:"newPassword,omitempty"`
}

// ProfileResponse is returned by a profile update.
type ProfileResponse struct {
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
	Fields  forms.Errors
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth api: status %d", e.Status)
	}
	return fmt.Sprintf("auth api: %s (status %d)", e.Message, e.Status)
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Error  string       `json:"error"`
	Fields forms.Errors `json:"fields,omitempty"`
}
