package request

import (
	"hotel-portal/internal/domain/checkin"
)

// CheckInForm is the multipart check-in page. The passport scan travels as
// the file "passport".
type CheckInForm struct {
	FirstName      string `form:"firstName"`
	LastName       string `form:"lastName"`
	DateOfBirth    string `form:"dateOfBirth"`
	PlaceOfBirth   string `form:"placeOfBirth"`
	Gender         string `form:"gender"`
	Nationality    string `form:"nationality"`
	Address        string `form:"address"`
	PassportNumber string `form:"passportNumber"`
	PhoneNumber    string `form:"phoneNumber"`
}

func (f *CheckInForm) ToDomain() (checkin.GuestDetails, error) {
	birth, err := optionalDate(f.DateOfBirth)
	if err != nil {
		return checkin.GuestDetails{}, err
	}
	return checkin.GuestDetails{
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		DateOfBirth:    birth,
		PlaceOfBirth:   f.PlaceOfBirth,
		Gender:         f.Gender,
		Nationality:    f.Nationality,
		Address:        f.Address,
		PassportNumber: f.PassportNumber,
		PhoneNumber:    f.PhoneNumber,
	}, nil
}
