package readmodel

import (
	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/checkin"
	"hotel-portal/internal/domain/pricing"
	"hotel-portal/internal/domain/room"
)

// GuestRM is a guest as listed for a room or in the admin guest list.
type GuestRM struct {
	FirstName string
	LastName  string
	Email     string
}

// CheckInFormRM is everything the check-in page renders before submit.
type CheckInFormRM struct {
	Booking     booking.Booking
	Price       pricing.Estimate
	Email       string
	Details     checkin.GuestDetails
	SubmitLabel string
}

// KeyStatusRM is the smart lock state of a room.
type KeyStatusRM struct {
	RoomID      int64
	SmartLockID string
	Status      string
}

// MyRoomRM is one room the caller is checked into.
type MyRoomRM struct {
	Room          room.Room
	BookingID     int64
	IsOwner       bool
	Guests        []GuestRM
	KeyStatus     string
	CleaningFrom  string
	CleaningTo    string
	TimeOptions   []string
	CleaningInUse bool
}

// CleaningRowRM is one room on the staff cleaning board.
type CleaningRowRM struct {
	Room             room.Room
	Occupied         bool
	InProgress       bool
	LastCleanedLabel string
	Expired          bool
	Err              string
}
