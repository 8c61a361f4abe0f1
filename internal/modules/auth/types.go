package auth

import (
	"errors"
	"regexp"
	"strings"

	"github.com/farhanrahman0027/Movies-TV-Shows-Manager/internal/pkg/response"
)

// Matches the address pattern the original frontend and API agreed on.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

type SignupDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type userResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the two cases are indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NormalizeEmail lowercases and trims an address before storage and
// lookup, so "A@x.com" and "a@x.com" are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (d *SignupDTO) Validate() []response.FieldError {
	details := validateEmail(d.Email)
	switch {
	case d.Password == "":
		details = append(details, response.FieldError{Field: "password", Message: "Password is required"})
	case len(d.Password) < minPasswordLength:
		details = append(details, response.FieldError{Field: "password", Message: "Password must be at least 6 characters long"})
	}
	return details
}

// Validate for login checks presence and address shape only. The
// length rule is a signup rule; enforcing it here would turn a wrong
// short password into a 400 instead of the uniform 401.
func (d *LoginDTO) Validate() []response.FieldError {
	details := validateEmail(d.Email)
	if d.Password == "" {
		details = append(details, response.FieldError{Field: "password", Message: "Password is required"})
	}
	return details
}

func validateEmail(email string) []response.FieldError {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return []response.FieldError{{Field: "email", Message: "Email is required"}}
	}
	if !emailPattern.MatchString(trimmed) {
		return []response.FieldError{{Field: "email", Message: "Please enter a valid email address"}}
	}
	return nil
}
