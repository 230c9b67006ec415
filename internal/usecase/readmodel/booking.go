package readmodel

import (
	"time"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
)

// GuestBookingRM is one row of a guest's booking list.
type GuestBookingRM struct {
	booking.Booking
	CheckIn  booking.CheckInState
	Started  bool
	IsActive bool
}

// DetailedBookingRM is the manager's view of a booking including the guest's
// identity fields.
type DetailedBookingRM struct {
	ID             int64
	BookingNumber  string
	RoomName       string
	Stay           booking.Stay
	Price          float64
	Email          string
	FirstName      string
	LastName       string
	Address        string
	Nationality    string
	PhoneNumber    string
	PassportNumber string
	Gender         string
	DateOfBirth    calendar.Date
	PlaceOfBirth   string
	IsActive       bool
	Capacity       int
	LastCleanedAt  time.Time
	BookingDate    calendar.Date
	IsPaid         bool
	Status         booking.Status
	TotalAmount    float64
	NumberOfNights int
	TransactionID  string
}

// ManagerBookingRM adds the resolved check-in marker.
type ManagerBookingRM struct {
	DetailedBookingRM
	CheckIn booking.CheckInState
}

// CheckoutRM is a created payment session.
type CheckoutRM struct {
	URL       string
	SessionID string
}

// DocumentRM is a binary document fetched from the backend.
type DocumentRM struct {
	Name        string
	ContentType string
	Content     []byte
}
