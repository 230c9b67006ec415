package activity

import (
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/pricing"
	"hotel-portal/internal/pkg/errs"
)

const (
	MinParticipants = 1
	MaxParticipants = 1000
)

var (
	ErrNoSlotSelected    = errs.Validation("Please select a timeslot first.")
	ErrNotEnoughSpots    = errs.Validation("Not enough spots available. Adjust participant count.")
	ErrParticipantsRange = errs.Validation("Participants must be between 1 and 1000.")
	ErrFilterDateInPast  = errs.Validation("The date cannot be in the past.")
	ErrSlotUnavailable   = errs.Validation("The selected timeslot is no longer available.")
)

// Slot is a bookable occurrence of an activity on a concrete date.
type Slot struct {
	ID       int64
	Date     calendar.Date
	Start    calendar.ClockTime
	End      calendar.ClockTime
	Capacity int
	Occupied int
}

func (s Slot) Remaining() int {
	if r := s.Capacity - s.Occupied; r > 0 {
		return r
	}
	return 0
}

func (s Slot) CanFit(participants int) bool {
	return participants <= s.Remaining()
}

func ValidateParticipants(n int) error {
	if n < MinParticipants || n > MaxParticipants {
		return ErrParticipantsRange
	}
	return nil
}

// SlotFilter narrows a slot listing. Zero values mean "no filter".
type SlotFilter struct {
	Date         calendar.Date
	Participants int
}

func (f SlotFilter) IsEmpty() bool {
	return f.Date.IsZero() && f.Participants == 0
}

// Validate rejects past dates and out-of-range participant counts.
func (f SlotFilter) Validate(today calendar.Date) error {
	if !f.Date.IsZero() && f.Date.Before(today) {
		return ErrFilterDateInPast
	}
	if f.Participants != 0 {
		return ValidateParticipants(f.Participants)
	}
	return nil
}

// ParticipantEstimate is participants x per-person price plus tax.
func ParticipantEstimate(participants int, perPerson pricing.Money) (pricing.Estimate, error) {
	return pricing.NewEstimate(int64(participants), perPerson)
}

// CheckBooking validates a slot booking before any request is made.
func CheckBooking(slot *Slot, participants int) error {
	if slot == nil || slot.ID == 0 {
		return ErrNoSlotSelected
	}
	if err := ValidateParticipants(participants); err != nil {
		return err
	}
	if !slot.CanFit(participants) {
		return ErrNotEnoughSpots
	}
	return nil
}
