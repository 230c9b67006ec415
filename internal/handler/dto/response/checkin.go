package response

import (
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/usecase/readmodel"
)

type GuestDetailsResponse struct {
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	DateOfBirth    calendar.Date `json:"dateOfBirth"`
	PlaceOfBirth   string        `json:"placeOfBirth"`
	Gender         string        `json:"gender"`
	Nationality    string        `json:"nationality"`
	Address        string        `json:"address"`
	PassportNumber string        `json:"passportNumber"`
	PhoneNumber    string        `json:"phoneNumber"`
}

type CheckInFormResponse struct {
	Booking     BookingResponse      `json:"booking"`
	Price       QuoteResponse        `json:"price"`
	Total       string               `json:"total"`
	Email       string               `json:"email"`
	Guest       GuestDetailsResponse `json:"details"`
	SubmitLabel string               `json:"submitLabel"`
}

func FromCheckInForm(f readmodel.CheckInFormRM) CheckInFormResponse {
	res := CheckInFormResponse{
		Booking:     FromBooking(f.Booking),
		Price:       FromEstimate(f.Price),
		Total:       f.Price.Total.String(),
		Email:       f.Email,
		SubmitLabel: f.SubmitLabel,
	}
	copyFields(&res.Guest, &f.Details)
	return res
}
