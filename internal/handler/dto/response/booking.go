package response

import (
	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/readmodel"
)

type BookingResponse struct {
	ID           int64                `json:"id"`
	Number       string               `json:"bookingNumber"`
	RoomID       int64                `json:"roomId"`
	RoomName     string               `json:"roomName"`
	UserFullName string               `json:"userFullName,omitempty"`
	StartDate    calendar.Date        `json:"startDate"`
	EndDate      calendar.Date        `json:"endDate"`
	Price        float64              `json:"price"`
	Status       booking.Status       `json:"status"`
	Paid         bool                 `json:"paid"`
	CheckIn      booking.CheckInState `json:"checkIn,omitempty"`
	Started      bool                 `json:"started"`
	IsActive     bool                 `json:"isActive"`
}

func FromBooking(b booking.Booking) BookingResponse {
	var res BookingResponse
	copyFields(&res, &b)
	res.StartDate = b.Stay.Start()
	res.EndDate = b.Stay.End()
	return res
}

func FromGuestBookings(rows []readmodel.GuestBookingRM) []BookingResponse {
	return mapSlice(rows, func(r readmodel.GuestBookingRM) BookingResponse {
		res := FromBooking(r.Booking)
		res.CheckIn = r.CheckIn
		res.Started = r.Started
		res.IsActive = r.IsActive
		return res
	})
}

type BookingResultResponse struct {
	BookingID   int64  `json:"bookingId"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}

func FromBookingResult(r usecase.BookingResult) BookingResultResponse {
	return BookingResultResponse{
		BookingID:   r.Booking.ID,
		RedirectURL: r.RedirectURL,
		Message:     r.Message,
	}
}

type ManagerBookingResponse struct {
	ID             int64                `json:"id"`
	BookingNumber  string               `json:"bookingNumber"`
	RoomName       string               `json:"roomName"`
	StartDate      calendar.Date        `json:"startDate"`
	EndDate        calendar.Date        `json:"endDate"`
	Price          float64              `json:"price"`
	Email          string               `json:"email"`
	FirstName      string               `json:"firstName"`
	LastName       string               `json:"lastName"`
	Address        string               `json:"address,omitempty"`
	Nationality    string               `json:"nationality,omitempty"`
	PhoneNumber    string               `json:"phoneNumber,omitempty"`
	PassportNumber string               `json:"passportNumber,omitempty"`
	Gender         string               `json:"gender,omitempty"`
	DateOfBirth    calendar.Date        `json:"dateOfBirth"`
	PlaceOfBirth   string               `json:"placeOfBirth,omitempty"`
	IsActive       bool                 `json:"isActive"`
	Capacity       int                  `json:"capacity"`
	BookingDate    calendar.Date        `json:"bookingDate"`
	IsPaid         bool                 `json:"isPaid"`
	Status         booking.Status       `json:"status"`
	TotalAmount    float64              `json:"totalAmount"`
	NumberOfNights int                  `json:"numberOfNights"`
	TransactionID  string               `json:"transactionId,omitempty"`
	CheckIn        booking.CheckInState `json:"checkIn"`
}

func FromManagerBooking(r readmodel.ManagerBookingRM) ManagerBookingResponse {
	var res ManagerBookingResponse
	copyFields(&res, &r.DetailedBookingRM)
	res.StartDate = r.Stay.Start()
	res.EndDate = r.Stay.End()
	res.CheckIn = r.CheckIn
	return res
}

func FromManagerBookingPage(p readmodel.Page[readmodel.ManagerBookingRM]) Page[ManagerBookingResponse] {
	return mapPage(p, FromManagerBooking)
}
