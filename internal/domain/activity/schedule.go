package activity

import (
	"time"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/pkg/errs"
)

var (
	ErrToNotAfterFrom     = errs.Validation(`"To" must be later than "From"`)
	ErrDateEmpty          = errs.Validation("Date cannot be empty")
	ErrTimePassed         = errs.Validation("This Time has already passed")
	ErrDayEmpty           = errs.Validation("Day cannot stay empty")
	ErrDuplicateDay       = errs.Validation("Cannot add a day multiple times")
	ErrNoScheduleSelected = errs.Validation("Choose a Timeslot")
)

type ScheduleKind string

const (
	ScheduleSpecificDate ScheduleKind = "specificDate"
	ScheduleDaily        ScheduleKind = "daily"
	ScheduleWeekly       ScheduleKind = "weekly"
)

// Timeslot is one recurring or dated opening of an activity. Exactly one of
// DayOfWeek and SpecificDate is set.
type Timeslot struct {
	ID           int64
	DayOfWeek    DayOfWeek
	SpecificDate calendar.Date
	Start        calendar.ClockTime
	End          calendar.ClockTime
}

type WeeklyEntry struct {
	Day  string
	From calendar.ClockTime
	To   calendar.ClockTime
}

type ScheduleInput struct {
	Kind   ScheduleKind
	Date   calendar.Date
	From   calendar.ClockTime
	To     calendar.ClockTime
	Weekly []WeeklyEntry
}

// BuildSchedule validates the schedule form and expands it into timeslots.
// now must carry the hotel's location.
func BuildSchedule(in ScheduleInput, now time.Time) ([]Timeslot, error) {
	switch in.Kind {
	case ScheduleSpecificDate:
		return specificDateSlots(in, now)
	case ScheduleDaily:
		return dailySlots(in)
	case ScheduleWeekly:
		return weeklySlots(in)
	default:
		return nil, ErrNoScheduleSelected
	}
}

func specificDateSlots(in ScheduleInput, now time.Time) ([]Timeslot, error) {
	if !validRange(in.From, in.To) {
		return nil, ErrToNotAfterFrom
	}
	if in.Date.IsZero() {
		return nil, ErrDateEmpty
	}
	if in.From.On(in.Date, now.Location()).Before(now) {
		return nil, ErrTimePassed
	}
	return []Timeslot{{SpecificDate: in.Date, Start: in.From, End: in.To}}, nil
}

func dailySlots(in ScheduleInput) ([]Timeslot, error) {
	if !validRange(in.From, in.To) {
		return nil, ErrToNotAfterFrom
	}
	slots := make([]Timeslot, 0, len(Week))
	for _, d := range Week {
		slots = append(slots, Timeslot{DayOfWeek: d, Start: in.From, End: in.To})
	}
	return slots, nil
}

func weeklySlots(in ScheduleInput) ([]Timeslot, error) {
	if len(in.Weekly) == 0 {
		return nil, ErrNoScheduleSelected
	}
	slots := make([]Timeslot, 0, len(in.Weekly))
	seen := make(map[DayOfWeek]struct{}, len(in.Weekly))
	for _, e := range in.Weekly {
		day, ok := ParseDayOfWeek(e.Day)
		if !ok {
			return nil, ErrDayEmpty
		}
		if _, dup := seen[day]; dup {
			return nil, errs.Invalidf(ErrDuplicateDay, "Cannot add %s multiple times", day.Label())
		}
		seen[day] = struct{}{}
		if !validRange(e.From, e.To) {
			return nil, errs.Invalidf(ErrToNotAfterFrom, `%s: "To" must be later than "From"`, day.Label())
		}
		slots = append(slots, Timeslot{DayOfWeek: day, Start: e.From, End: e.To})
	}
	return slots, nil
}

func validRange(from, to calendar.ClockTime) bool {
	return !from.IsZero() && !to.IsZero() && from.Before(to)
}
