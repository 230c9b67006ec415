package checkin

import (
	"strings"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/pkg/errs"
)

var (
	ErrDetailsMissingSelf  = errs.Validation("Please input your information to proceed.")
	ErrDetailsMissingStaff = errs.Validation("Please input the guest information to proceed.")
)

// GuestDetails is the identity form filled in at check-in.
type GuestDetails struct {
	FirstName      string
	LastName       string
	DateOfBirth    calendar.Date
	PlaceOfBirth   string
	Gender         string
	Nationality    string
	Address        string
	PassportNumber string
	PhoneNumber    string
}

// Complete reports whether every field is filled in.
func (g GuestDetails) Complete() bool {
	for _, s := range []string{
		g.FirstName, g.LastName, g.PlaceOfBirth, g.Gender,
		g.Nationality, g.Address, g.PassportNumber, g.PhoneNumber,
	} {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return !g.DateOfBirth.IsZero()
}

// Submission is a validated check-in ready to be sent.
type Submission struct {
	Variant  Variant
	Details  GuestDetails
	Document Document
}

// NewSubmission checks the document first and the form second.
func NewSubmission(v Variant, details GuestDetails, doc *Document) (Submission, error) {
	if err := ValidateDocument(v, doc); err != nil {
		return Submission{}, err
	}
	if !details.Complete() {
		if v.Staff() {
			return Submission{}, ErrDetailsMissingStaff
		}
		return Submission{}, ErrDetailsMissingSelf
	}
	return Submission{Variant: v, Details: details, Document: *doc}, nil
}
