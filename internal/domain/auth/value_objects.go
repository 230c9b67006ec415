package auth

import (
	"strings"

	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/pkg/errs"
)

var (
	ErrMissingCredentials = errs.Validation("Please enter your email and password.")
	ErrInvalidCredentials = errs.Validation("Invalid email or password.")
)

// Credentials for the backend's authentication endpoint. Password strength
// is the backend's concern, only presence is checked here.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	if strings.TrimSpace(emailStr) == "" || passwordStr == "" {
		return Credentials{}, ErrMissingCredentials
	}
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
