package cleaning

import (
	"fmt"
	"time"

	"hotel-portal/internal/domain/calendar"
)

// LastCleanedLabel renders lastCleanedAt relative to now's calendar day.
// Both times are expected in the hotel's location.
func LastCleanedLabel(at, now time.Time) string {
	if at.IsZero() {
		return ""
	}
	days := calendar.DateOf(at).DaysUntil(calendar.DateOf(now))
	hhmm := at.Format(calendar.ClockLayout)
	switch {
	case days < 1:
		return "Today at " + hhmm
	case days < 2:
		return "Yesterday at " + hhmm
	default:
		return fmt.Sprintf("%d days ago at %s", days, hhmm)
	}
}

// Occupancy as reported by the backend.
const (
	Occupied    = "occupied"
	NotOccupied = "not-occupied"
)
