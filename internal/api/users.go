package api

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SimoKiihamaki/nexa/internal/authapi"
	"github.com/SimoKiihamaki/nexa/internal/forms"
)

// Default pagination values for user listing.
const (
	defaultUsersPage     = 1
	defaultUsersPageSize = 20
	maxUsersPageSize     = 100
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// Profile is the editable part of an account.
type Profile struct {
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
}

// Account is a stored user.
type Account struct {
	ID           string
	Email        string
	Name         string
	Role         string
	WhatsApp     string
	IsStudent    bool
	Profile      Profile
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public returns the wire view of the account.
func (a Account) Public() authapi.User {
	return authapi.User{ID: a.ID, Email: a.Email, Name: a.Name, Role: a.Role}
}

// ListUsersParams defines filters accepted by ListUsers.
type ListUsersParams struct {
	Page     int
	PageSize int
}

// Pagination describes the pagination metadata returned by list endpoints.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// ListUsersResult wraps a page of users and its pagination.
type ListUsersResult struct {
	Users      []authapi.User
	Pagination Pagination
}

// UserRepository describes the account operations the auth endpoints need.
type UserRepository interface {
	CreateUser(ctx context.Context, req forms.Signup) (Account, error)
	AuthenticateUser(ctx context.Context, email, password string) (Account, error)
	IssueToken(ctx context.Context, a Account) (string, error)
	ValidateToken(ctx context.Context, token string) (Account, error)
	UpdateProfile(ctx context.Context, id string, req authapi.ProfileUpdateRequest) (Account, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ListUsers(ctx context.Context, params ListUsersParams) (ListUsersResult, error)
}

// RepositoryOptions tunes the in-memory repository.
type RepositoryOptions struct {
	BcryptCost int
	Now        func() time.Time
}

// InMemoryUserRepository keeps accounts and sessions in memory. It backs the
// local development server and tests.
type InMemoryUserRepository struct {
	mu       sync.RWMutex
	accounts map[string]*Account
	byEmail  map[string]string
	sessions map[string]string
	resets   map[string]time.Time
	cost     int
	now      func() time.Time
}

// NewInMemoryUserRepository constructs an empty repository.
func NewInMemoryUserRepository(opts RepositoryOptions) *InMemoryUserRepository {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &InMemoryUserRepository{
		accounts: make(map[string]*Account),
		byEmail:  make(map[string]string),
		sessions: make(map[string]string),
		resets:   make(map[string]time.Time),
		cost:     cost,
		now:      now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores a new account. The email is matched case-insensitively.
func (r *InMemoryUserRepository) CreateUser(_ context.Context, req forms.Signup) (Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), r.cost)
	if err != nil {
		return Account{}, err
	}
	key := normalizeEmail(req.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return Account{}, ErrEmailTaken
	}
	now := r.now()
	a := &Account{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(req.Email),
		Name:         req.Name,
		Role:         req.Role,
		WhatsApp:     req.WhatsApp,
		IsStudent:    req.IsStudent,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.accounts[a.ID] = a
	r.byEmail[key] = a.ID
	return *a, nil
}

// AuthenticateUser checks credentials.
func (r *InMemoryUserRepository) AuthenticateUser(_ context.Context, email, password string) (Account, error) {
	r.mu.RLock()
	id, ok := r.byEmail[normalizeEmail(email)]
	var a Account
	if ok {
		a = *r.accounts[id]
	}
	r.mu.RUnlock()

	if !ok {
		return Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return a, nil
}

// IssueToken creates an opaque session token for a.
func (r *InMemoryUserRepository) IssueToken(_ context.Context, a Account) (string, error) {
	token := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; !ok {
		return "", ErrUserNotFound
	}
	r.sessions[token] = a.ID
	return token, nil
}

// ValidateToken resolves a session token to its account.
func (r *InMemoryUserRepository) ValidateToken(_ context.Context, token string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.sessions[token]
	if !ok {
		return Account{}, ErrInvalidToken
	}
	a, ok := r.accounts[id]
	if !ok {
		return Account{}, ErrInvalidToken
	}
	return *a, nil
}

// UpdateProfile merges the non-empty fields of req into the account. A
// password change requires the current password.
func (r *InMemoryUserRepository) UpdateProfile(_ context.Context, id string, req authapi.ProfileUpdateRequest) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return Account{}, ErrUserNotFound
	}
	next := *a

	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(req.OldPassword)); err != nil {
			return Account{}, ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), r.cost)
		if err != nil {
			return Account{}, err
		}
		next.PasswordHash = hash
	}
	if req.Email != "" {
		key := normalizeEmail(req.Email)
		if owner, taken := r.byEmail[key]; taken && owner != id {
			return Account{}, ErrEmailTaken
		}
		delete(r.byEmail, normalizeEmail(a.Email))
		r.byEmail[key] = id
		next.Email = strings.TrimSpace(req.Email)
	}
	setIf(&next.Name, req.Name)
	setIf(&next.Profile.Bio, req.Bio)
	setIf(&next.Profile.State, req.State)
	setIf(&next.Profile.Role, req.Role)
	setIf(&next.Profile.Gender, req.Gender)
	setIf(&next.Profile.BrandName, req.BrandName)
	setIf(&next.Profile.CompanyName, req.CompanyName)
	setIf(&next.Profile.Instagram, req.Instagram)
	setIf(&next.Profile.Description, req.Description)
	if req.Languages != nil {
		next.Profile.Languages = append([]string(nil), req.Languages...)
	}
	if req.Categories != nil {
		next.Profile.Categories = append([]string(nil), req.Categories...)
	}
	next.UpdatedAt = r.now()
	*a = next
	return next, nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// RequestPasswordReset records a reset request. Unknown addresses are
// accepted silently so the endpoint does not reveal which emails exist.
func (r *InMemoryUserRepository) RequestPasswordReset(_ context.Context, email string) error {
	key := normalizeEmail(email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[key]; ok {
		r.resets[key] = r.now()
	}
	return nil
}

// ResetRequestedAt reports when a reset was last requested for email.
func (r *InMemoryUserRepository) ResetRequestedAt(email string) (time.Time, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	at, ok := r.resets[normalizeEmail(email)]
	return at, ok
}

// ListUsers returns a paginated slice of users ordered by creation time.
func (r *InMemoryUserRepository) ListUsers(_ context.Context, params ListUsersParams) (ListUsersResult, error) {
	if r == nil {
		return ListUsersResult{}, errors.New("repository is nil")
	}

	page := params.Page
	if page < 1 {
		page = defaultUsersPage
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultUsersPageSize
	}
	if pageSize > maxUsersPageSize {
		pageSize = maxUsersPageSize
	}

	r.mu.RLock()
	all := make([]Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		all = append(all, *a)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].Email < all[j].Email
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	total := len(all)
	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	users := make([]authapi.User, 0, end-start)
	for _, a := range all[start:end] {
		users = append(users, a.Public())
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return ListUsersResult{
		Users: users,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}
