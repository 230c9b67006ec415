package booking

import (
	"time"

	"hotel-portal/internal/domain/calendar"
)

// Booking is the guest-facing room booking as returned by the backend.
type Booking struct {
	ID           int64
	Number       string
	RoomID       int64
	RoomName     string
	UserID       int64
	UserFullName string
	Stay         Stay
	Price        float64
	Status       Status
	Paid         bool
}

// IsActive holds when now lies within the stay. The booking status plays no
// part; a cancelled booking over today's date still reads as active.
func (b *Booking) IsActive(now time.Time) bool {
	return b.Stay.Contains(now)
}

// Request is a validated booking form.
type Request struct {
	RoomID        int64
	RoomName      string
	Stay          Stay
	PaymentMethod PaymentMethod
}

// NewRequest validates the raw form before anything is sent.
func NewRequest(roomID int64, roomName string, start, end calendar.Date, method PaymentMethod) (Request, error) {
	if roomID <= 0 || !method.IsValid() {
		return Request{}, ErrIncompleteForm
	}
	stay, err := NewStay(start, end)
	if err != nil {
		return Request{}, err
	}
	return Request{
		RoomID:        roomID,
		RoomName:      roomName,
		Stay:          stay,
		PaymentMethod: method,
	}, nil
}

// CheckInStatus resolves the tri-state marker from the backend's check-in
// records of a user.
func CheckInStatus(bookingID int64, status Status, records []CheckInRecord) CheckInState {
	if status == StatusCompleted {
		return CheckedIn
	}
	for _, r := range records {
		if r.BookingID != bookingID {
			continue
		}
		if r.Email == InvalidatedEmail {
			return CheckedOut
		}
		return CheckedIn
	}
	return NotCheckedIn
}

// CheckInRecord is one entry of the backend's check-in status list.
type CheckInRecord struct {
	BookingID int64
	Email     string
}
