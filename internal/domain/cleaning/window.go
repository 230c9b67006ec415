package cleaning

import (
	"time"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/pkg/errs"
)

// MinWindow is the shortest cleaning window a guest may offer. It is also
// the step of the offered time options.
const MinWindow = 20 * time.Minute

var (
	ErrWindowMissing  = errs.Validation(`Please provide both "From" and "To" times.`)
	ErrWindowOrder    = errs.Validation(`Please make sure that "From" is earlier than "To".`)
	ErrWindowTooShort = errs.Validation(`Please make sure that "From" and "To" are at least 20min apart.`)
	ErrWindowPassed   = errs.Validation("Please choose a later time.")
)

// Window is a same-day period during which the room may be cleaned.
type Window struct {
	date calendar.Date
	from calendar.ClockTime
	to   calendar.ClockTime
}

// NewWindow validates a guest's window for today. now carries the hotel's
// location. Rules are checked in a fixed order and the first failure wins.
func NewWindow(from, to calendar.ClockTime, now time.Time) (Window, error) {
	if from.IsZero() || to.IsZero() {
		return Window{}, ErrWindowMissing
	}
	if !from.Before(to) {
		return Window{}, ErrWindowOrder
	}
	if to.Sub(from) < MinWindow {
		return Window{}, ErrWindowTooShort
	}
	current := calendar.ClockOf(now)
	if from.Before(current) {
		return Window{}, errs.Invalidf(ErrWindowPassed, "Please choose a later time, it is already %s.", current)
	}
	return Window{date: calendar.DateOf(now), from: from, to: to}, nil
}

// WindowOf rebuilds a stored window without validation.
func WindowOf(date calendar.Date, from, to calendar.ClockTime) Window {
	return Window{date: date, from: from, to: to}
}

func (w Window) Date() calendar.Date      { return w.date }
func (w Window) From() calendar.ClockTime { return w.from }
func (w Window) To() calendar.ClockTime   { return w.to }

// IsFor reports whether the window was chosen on day d.
func (w Window) IsFor(d calendar.Date) bool {
	return !w.date.IsZero() && w.date.Equal(d)
}

func (w Window) ConfirmationMessage() string {
	return "Room marked as ready to clean from " + w.from.String() + " to " + w.to.String() + "."
}

// TimeOptions lists the selectable HH:MM values after now on a MinWindow grid.
func TimeOptions(now time.Time) []string {
	step := int(MinWindow / time.Minute)
	current := now.Hour()*60 + now.Minute()
	var out []string
	for m := (current/step)*step + step; m < 24*60; m += step {
		out = append(out, calendar.NewClockTime(m/60, m%60).String())
	}
	return out
}
