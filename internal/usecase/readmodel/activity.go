package readmodel

import (
	"hotel-portal/internal/domain/activity"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/pricing"
)

// ActivityBookingRM is one of the caller's activity bookings.
type ActivityBookingRM struct {
	ID           int64
	ActivityID   int64
	ActivityName string
	BookingDate  calendar.Date
	Date         calendar.Date
	Start        calendar.ClockTime
	End          calendar.ClockTime
	Participants int
	Paid         bool
}

// SlotListRM is a page of slots with the estimate for the requested group.
type SlotListRM struct {
	Slots     Page[activity.Slot]
	PerPerson pricing.Money
	Estimate  *pricing.Estimate
}
