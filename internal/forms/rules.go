package forms

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	NameMinLength = 5
	NameMaxLength = 15

	// PasswordSpecials is the set of characters that satisfy the special
	// character rule; no other non-alphanumerics are accepted.
	PasswordSpecials = `!@#$%^&*(),.?":{}|<>`
)

var (
	ErrNameRequired     = errors.New("Nome é obrigatório")
	ErrNameTooShort     = errors.New("Nome deve ter pelo menos 5 caracteres")
	ErrNameTooLong      = errors.New("Nome deve ter menos de 15 caracteres")
	ErrNameNoSpace      = errors.New("Nome deve conter pelo menos um espaço")
	ErrEmailRequired    = errors.New("E-mail é obrigatório")
	ErrEmailNoAt        = errors.New("E-mail deve conter o símbolo @")
	ErrPasswordRequired = errors.New("Senha é obrigatória")
	ErrPasswordWeak     = errors.New("Senha deve conter letras maiúsculas, minúsculas, números e caracteres especiais")
	ErrConfirmRequired  = errors.New("Por favor, confirme sua senha")
	ErrPasswordMismatch = errors.New("Senhas não coincidem")
)

// Name checks a signup display name. Length is counted in characters.
func Name(s string) error {
	if s == "" {
		return ErrNameRequired
	}
	n := utf8.RuneCountInString(s)
	if n < NameMinLength {
		return ErrNameTooShort
	}
	if n > NameMaxLength {
		return ErrNameTooLong
	}
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return ErrNameNoSpace
	}
	return nil
}

// Email only requires an "@"; the backend owns real address validation.
func Email(s string) error {
	if s == "" {
		return ErrEmailRequired
	}
	if !strings.Contains(s, "@") {
		return ErrEmailNoAt
	}
	return nil
}

// Password enforces the signup strength rule: at least one lowercase letter,
// one uppercase letter, one digit and one of PasswordSpecials, with every
// character drawn from those classes.
func Password(s string) error {
	if s == "" {
		return ErrPasswordRequired
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSpecials, r):
			special = true
		default:
			return ErrPasswordWeak
		}
	}
	if !lower || !upper || !digit || !special {
		return ErrPasswordWeak
	}
	return nil
}

// PasswordPresent is the sign-in rule: any non-empty password.
func PasswordPresent(s string) error {
	if s == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ConfirmPassword returns a rule that requires the confirmation to equal the
// value returned by password at check time.
func ConfirmPassword(password func() string) func(string) error {
	return func(s string) error {
		if s == "" {
			return ErrConfirmRequired
		}
		if s != password() {
			return ErrPasswordMismatch
		}
		return nil
	}
}

// Required returns a rule that rejects blank input with message.
func Required(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

// Optional always passes.
func Optional(string) error { return nil }
