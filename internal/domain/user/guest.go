package user

import (
	"time"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/pkg/errs"
)

const (
	MinGuestAge          = 18
	GuestPasswordMinLen  = 6
	SignUpPasswordMinLen = 8
)

var (
	ErrGuestName     = errs.Validation("First and last name must be between 1 and 64 characters.")
	ErrGuestTooYoung = errs.Validation("Guest must be at least 18 years old.")
	ErrInvalidGender = errs.Validation("Gender must be one of MALE, FEMALE or DIVERSE.")
	ErrPlaceOfBirth  = errs.Validation("Place of birth must be between 3 and 128 characters.")
	ErrGuestAddress  = errs.Validation("Address must be between 3 and 256 characters.")
	ErrPassportNo    = errs.Validation("Passport number must be between 7 and 15 characters.")
	ErrGuestPhone    = errs.Validation("Phone number must be between 6 and 9 characters.")
)

// Guest is the admin-facing guest profile.
type Guest struct {
	FirstName      string
	LastName       string
	Email          string
	DateOfBirth    calendar.Date
	PlaceOfBirth   string
	Gender         Gender
	Nationality    string
	Address        string
	PassportNumber string
	PhoneNumber    string
}

// GuestInput is an unvalidated guest form. Optional fields may be empty.
type GuestInput struct {
	Guest
	Password string
}

// GuestForm is a validated create or update payload. Password is empty on
// updates that keep the current one.
type GuestForm struct {
	Guest
	Password string
}

// NewGuestForm validates a guest form. creating requires a password.
func NewGuestForm(in GuestInput, creating bool, today calendar.Date) (GuestForm, error) {
	g := in.Guest
	var ok bool
	if g.FirstName, ok = lengthBetween(g.FirstName, 1, 64); !ok {
		return GuestForm{}, ErrGuestName
	}
	if g.LastName, ok = lengthBetween(g.LastName, 1, 64); !ok {
		return GuestForm{}, ErrGuestName
	}
	email, err := NewEmail(g.Email)
	if err != nil {
		return GuestForm{}, err
	}
	g.Email = email.Value()
	if !g.DateOfBirth.IsZero() && AgeOn(g.DateOfBirth, today) < MinGuestAge {
		return GuestForm{}, ErrGuestTooYoung
	}
	if g.Gender != "" && !g.Gender.IsValid() {
		return GuestForm{}, ErrInvalidGender
	}
	for _, opt := range []struct {
		value    *string
		min, max int
		err      error
	}{
		{&g.PlaceOfBirth, 3, 128, ErrPlaceOfBirth},
		{&g.Address, 3, 256, ErrGuestAddress},
		{&g.PassportNumber, 7, 15, ErrPassportNo},
		{&g.PhoneNumber, 6, 9, ErrGuestPhone},
	} {
		if *opt.value == "" {
			continue
		}
		if *opt.value, ok = lengthBetween(*opt.value, opt.min, opt.max); !ok {
			return GuestForm{}, opt.err
		}
	}

	form := GuestForm{Guest: g}
	if creating || in.Password != "" {
		pw, err := NewPassword(in.Password, GuestPasswordMinLen)
		if err != nil {
			return GuestForm{}, err
		}
		form.Password = pw.Value()
	}
	return form, nil
}

// AgeOn returns the age in completed years on day today.
func AgeOn(birth, today calendar.Date) int {
	b := birth.In(time.UTC)
	t := today.In(time.UTC)
	age := t.Year() - b.Year()
	if t.Month() < b.Month() || (t.Month() == b.Month() && t.Day() < b.Day()) {
		age--
	}
	return age
}

// SignUp is a validated self-registration.
type SignUp struct {
	Email    Email
	Password Password
}

func NewSignUp(email, password string) (SignUp, error) {
	e, err := NewEmail(email)
	if err != nil {
		return SignUp{}, err
	}
	p, err := NewPassword(password, SignUpPasswordMinLen)
	if err != nil {
		return SignUp{}, err
	}
	return SignUp{Email: e, Password: p}, nil
}
