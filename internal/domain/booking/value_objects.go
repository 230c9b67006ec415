package booking

import (
	"time"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/pkg/errs"
)

var (
	ErrIncompleteForm  = errs.Validation("Please fill out the form correctly.")
	ErrEndBeforeStart  = errs.Validation("End date must be after start date.")
	ErrInvalidDocument = errs.Validation("Unknown document type.")
)

// Stay is the inclusive date range of a room booking.
type Stay struct {
	start calendar.Date
	end   calendar.Date
}

func NewStay(start, end calendar.Date) (Stay, error) {
	if start.IsZero() || end.IsZero() {
		return Stay{}, ErrIncompleteForm
	}
	if !end.After(start) {
		return Stay{}, ErrEndBeforeStart
	}
	return Stay{start: start, end: end}, nil
}

// StayOf builds a stay from backend data without validation.
func StayOf(start, end calendar.Date) Stay {
	return Stay{start: start, end: end}
}

func (s Stay) Start() calendar.Date { return s.start }

func (s Stay) End() calendar.Date { return s.end }

func (s Stay) Nights() int {
	return s.start.DaysUntil(s.end)
}

// Contains holds when now falls between 00:00 of the first day and the last
// instant of the final day, both in now's location.
func (s Stay) Contains(now time.Time) bool {
	today := calendar.DateOf(now)
	return !today.Before(s.start) && !today.After(s.end)
}

// HasStarted reports whether the first day has been reached.
func (s Stay) HasStarted(now time.Time) bool {
	return !calendar.DateOf(now).Before(s.start)
}
