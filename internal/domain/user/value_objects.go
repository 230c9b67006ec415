package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"hotel-portal/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Validation("Please enter a valid email address.")
	ErrPasswordTooWeak = errs.Validation("Password is too short.")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) IsZero() bool {
	return e.value == ""
}

type Password struct {
	value string
}

// NewPassword enforces a minimum length measured in characters.
func NewPassword(s string, minLen int) (Password, error) {
	if utf8.RuneCountInString(s) < minLen {
		return Password{}, errs.Invalidf(ErrPasswordTooWeak, "Password must be at least %d characters long.", minLen)
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// lengthBetween trims s and checks its rune count.
func lengthBetween(s string, minLen, maxLen int) (string, bool) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	return s, n >= minLen && n <= maxLen
}
