package response

import (
	"hotel-portal/internal/domain/activity"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/usecase/readmodel"
)

type TimeslotResponse struct {
	ID           int64              `json:"id,omitempty"`
	DayOfWeek    activity.DayOfWeek `json:"dayOfWeek,omitempty"`
	SpecificDate calendar.Date      `json:"specificDate"`
	StartTime    calendar.ClockTime `json:"startTime"`
	EndTime      calendar.ClockTime `json:"endTime"`
}

type ActivityResponse struct {
	ID               int64               `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	Capacity         int                 `json:"capacity"`
	Price            float64             `json:"price"`
	MainImage        string              `json:"mainImage,omitempty"`
	AdditionalImages []string            `json:"additionalImages"`
	Categories       []activity.Category `json:"categories"`
	Slots            []TimeslotResponse  `json:"timeslots"`
}

func FromActivity(a activity.Activity) ActivityResponse {
	var res ActivityResponse
	copyFields(&res, &a)
	if res.AdditionalImages == nil {
		res.AdditionalImages = []string{}
	}
	if res.Categories == nil {
		res.Categories = []activity.Category{}
	}
	res.Slots = mapSlice(a.Timeslots, func(t activity.Timeslot) TimeslotResponse {
		return TimeslotResponse{
			ID:           t.ID,
			DayOfWeek:    t.DayOfWeek,
			SpecificDate: t.SpecificDate,
			StartTime:    t.Start,
			EndTime:      t.End,
		}
	})
	return res
}

func FromActivityPage(p readmodel.Page[activity.Activity]) Page[ActivityResponse] {
	return mapPage(p, FromActivity)
}

type ActivitySavedResponse struct {
	Activity ActivityResponse `json:"activity"`
	Message  string           `json:"message"`
}

type SlotResponse struct {
	ID        int64              `json:"id"`
	Date      calendar.Date      `json:"date"`
	StartTime calendar.ClockTime `json:"startTime"`
	EndTime   calendar.ClockTime `json:"endTime"`
	Capacity  int                `json:"capacity"`
	Occupied  int                `json:"occupied"`
	Remaining int                `json:"remaining"`
}

func FromSlot(s activity.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: s.Start,
		EndTime:   s.End,
		Capacity:  s.Capacity,
		Occupied:  s.Occupied,
		Remaining: s.Remaining(),
	}
}

type SlotListResponse struct {
	Page[SlotResponse]
	PerPerson string         `json:"perPerson"`
	Estimate  *QuoteResponse `json:"estimate,omitempty"`
}

func FromSlotList(l readmodel.SlotListRM) SlotListResponse {
	res := SlotListResponse{
		Page:      mapPage(l.Slots, FromSlot),
		PerPerson: l.PerPerson.String(),
	}
	if l.Estimate != nil {
		q := FromEstimate(*l.Estimate)
		res.Estimate = &q
	}
	return res
}

type ActivityBookingResponse struct {
	ID           int64              `json:"id"`
	ActivityID   int64              `json:"activityId"`
	ActivityName string             `json:"activityName"`
	BookingDate  calendar.Date      `json:"bookingDate"`
	Date         calendar.Date      `json:"date"`
	Start        calendar.ClockTime `json:"startTime"`
	End          calendar.ClockTime `json:"endTime"`
	Participants int                `json:"participants"`
	Paid         bool               `json:"paid"`
}

func FromActivityBookings(rows []readmodel.ActivityBookingRM) []ActivityBookingResponse {
	return mapSlice(rows, func(r readmodel.ActivityBookingRM) ActivityBookingResponse {
		var res ActivityBookingResponse
		copyFields(&res, &r)
		return res
	})
}
