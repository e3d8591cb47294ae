package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/forms"
)

const maxBodyBytes = 1 << 20

func newRouter(deps Dependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.UserRepo == nil {
		deps.UserRepo = NewInMemoryUserRepository(RepositoryOptions{})
	}
	if deps.RateLimiter == nil {
		deps.RateLimiter = NewRateLimiter(60, 10)
		deps.RateLimiter.CleanupRoutine(context.Background(), DefaultCleanupInterval)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(SecurityMiddleware)
	r.Use(QuerySanitizationMiddleware)
	r.Use(deps.RateLimiter.RateLimit)

	r.Get("/healthz", healthHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", signupHandler(deps.UserRepo, deps.Logger))
		r.Post("/signin", signinHandler(deps.UserRepo))
		r.Post("/forgot-password", forgotPasswordHandler(deps.UserRepo, deps.Logger))

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(deps.UserRepo))
			r.Put("/profile", profileHandler(deps.UserRepo))
		})
	})

	if deps.ExposeUsers {
		r.Get("/dev/users", listUsersHandler(deps.UserRepo))
	}

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return false
	}
	return true
}

func signupHandler(repo UserRepository, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authapi.SignupRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.Name = sanitizeInput(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		req.WhatsApp = sanitizeInput(req.WhatsApp)

		var fieldErrs forms.Errors
		if err := req.ValidateRemote(); err != nil {
			errors.As(err, &fieldErrs)
		}
		switch req.Role {
		case "creator":
		case "brand":
			req.IsStudent = false
		default:
			fieldErrs = append(fieldErrs, forms.FieldError{Field: "role", Message: "Tipo de conta inválido"})
		}
		if len(fieldErrs) > 0 {
			writeValidationErrors(w, fieldErrs)
			return
		}

		account, err := repo.CreateUser(r.Context(), req)
		if errors.Is(err, ErrEmailTaken) {
			writeError(w, http.StatusConflict, "E-mail já cadastrado")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to create user")
			return
		}
		token, err := repo.IssueToken(r.Context(), account)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to issue token")
			return
		}
		logger.Info("account created",
			zap.String("user_id", account.ID),
			zap.String("role", account.Role),
			zap.Bool("student", account.IsStudent))
		writeJSON(w, http.StatusCreated, authapi.AuthResponse{User: account.Public(), Token: token})
	}
}

func signinHandler(repo UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authapi.SigninRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.Email = strings.TrimSpace(req.Email)

		if err := req.Validate(); err != nil {
			var fieldErrs forms.Errors
			errors.As(err, &fieldErrs)
			writeValidationErrors(w, fieldErrs)
			return
		}

		account, err := repo.AuthenticateUser(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "E-mail ou senha inválidos")
			return
		}
		token, err := repo.IssueToken(r.Context(), account)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to issue token")
			return
		}
		writeJSON(w, http.StatusOK, authapi.AuthResponse{User: account.Public(), Token: token})
	}
}

func profileHandler(repo UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := AccountFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req authapi.ProfileUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		var fieldErrs forms.Errors
		for _, f := range []struct {
			name string
			ptr  *string
		}{
			{"name", &req.Name},
			{"bio", &req.Bio},
			{"state", &req.State},
			{"role", &req.Role},
			{"gender", &req.Gender},
			{"brandName", &req.BrandName},
			{"companyName", &req.CompanyName},
			{"instagram", &req.Instagram},
			{"description", &req.Description},
		} {
			clean, fits := sanitizeField(*f.ptr, maxTextField)
			if !fits {
				fieldErrs = append(fieldErrs, forms.FieldError{Field: f.name, Message: fmt.Sprintf("máximo de %d caracteres", maxTextField)})
			}
			*f.ptr = clean
		}
		req.Languages = sanitizeList(req.Languages)
		req.Categories = sanitizeList(req.Categories)

		if req.Email != "" {
			if err := forms.Email(req.Email); err != nil {
				fieldErrs = append(fieldErrs, forms.FieldError{Field: "email", Message: err.Error()})
			}
		}
		if req.NewPassword != "" {
			if err := forms.Password(req.NewPassword); err != nil {
				fieldErrs = append(fieldErrs, forms.FieldError{Field: "newPassword", Message: err.Error()})
			}
		}
		if len(fieldErrs) > 0 {
			writeValidationErrors(w, fieldErrs)
			return
		}

		updated, err := repo.UpdateProfile(r.Context(), account.ID, req)
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			writeError(w, http.StatusForbidden, "Senha atual incorreta")
			return
		case errors.Is(err, ErrEmailTaken):
			writeError(w, http.StatusConflict, "E-mail já cadastrado")
			return
		case errors.Is(err, ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user not found")
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "failed to update profile")
			return
		}
		writeJSON(w, http.StatusOK, authapi.ProfileResponse{User: updated.Public(), Message: "Perfil atualizado"})
	}
}

func forgotPasswordHandler(repo UserRepository, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authapi.ForgotPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.Email = strings.TrimSpace(req.Email)
		if err := req.Validate(); err != nil {
			var fieldErrs forms.Errors
			errors.As(err, &fieldErrs)
			writeValidationErrors(w, fieldErrs)
			return
		}
		if err := repo.RequestPasswordReset(r.Context(), req.Email); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to request reset")
			return
		}
		logger.Debug("password reset requested")
		writeJSON(w, http.StatusAccepted, authapi.MessageResponse{
			Message: "Um email foi enviado para você com um link para redefinir sua senha.",
		})
	}
}

func listUsersHandler(repo UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePositiveInt(r, "page", defaultUsersPage)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		pageSize, err := parsePositiveInt(r, "page_size", defaultUsersPageSize)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		result, err := repo.ListUsers(r.Context(), ListUsersParams{Page: page, PageSize: pageSize})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to list users")
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Data       []authapi.User `json:"data"`
			Pagination Pagination     `json:"pagination"`
		}{
			Data:       result.Users,
			Pagination: result.Pagination,
		})
	}
}

func parsePositiveInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("invalid value for %s", key)
	}
	return value, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeValidationErrors(w http.ResponseWriter, fieldErrs forms.Errors) {
	writeJSON(w, http.StatusBadRequest, struct {
		Error  string       `json:"error"`
		Fields forms.Errors `json:"fields"`
	}{
		Error:  "validation failed",
		Fields: fieldErrs,
	})
}
