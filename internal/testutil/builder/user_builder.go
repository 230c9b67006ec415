//go:build unit || e2e

package builder

import (
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/user"
)

type GuestBuilder struct {
	Input    user.GuestInput
	Creating bool
	Today    calendar.Date
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		Input: user.GuestInput{
			Guest: user.Guest{
				FirstName:      "Anna",
				LastName:       "Huber",
				Email:          "anna.huber@example.com",
				DateOfBirth:    calendar.NewDate(1990, 5, 17),
				PlaceOfBirth:   "Vienna",
				Gender:         user.GenderFemale,
				Nationality:    "Austria",
				Address:        "Karlsplatz 13, 1040 Wien",
				PassportNumber: "P1234567",
				PhoneNumber:    "66412345",
			},
			Password: "secret1",
		},
		Creating: true,
		Today:    calendar.NewDate(2025, 4, 2),
	}
}

func (b *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(b)
	return b
}

func (b *GuestBuilder) BuildDomain() (user.GuestForm, error) {
	return user.NewGuestForm(b.Input, b.Creating, b.Today)
}

type EmployeeBuilder struct {
	Input    user.EmployeeInput
	Creating bool
}

func NewEmployeeBuilder() *EmployeeBuilder {
	return &EmployeeBuilder{
		Input: user.EmployeeInput{
			Email:       "staff@example.com",
			Password:    "secret1",
			FirstName:   "Max",
			LastName:    "Mustermann",
			PhoneNumber: "0664123456",
			RoleType:    string(user.RoleTypeCleaningStaff),
		},
		Creating: true,
	}
}

func (b *EmployeeBuilder) With(mutate func(*EmployeeBuilder)) *EmployeeBuilder {
	mutate(b)
	return b
}

func (b *EmployeeBuilder) BuildDomain() (user.EmployeeForm, error) {
	return user.NewEmployeeForm(b.Input, b.Creating)
}
