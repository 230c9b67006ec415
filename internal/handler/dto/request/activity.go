package request

import (
	"hotel-portal/internal/domain/activity"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/pkg/patch"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/queries"
)

type ActivitySearchQuery struct {
	PageIndex int     `form:"pageIndex"`
	PageSize  int     `form:"pageSize"`
	Name      string  `form:"name"`
	Date      string  `form:"date"`
	Capacity  int     `form:"capacity"`
	MinPrice  float64 `form:"minPrice"`
	MaxPrice  float64 `form:"maxPrice"`
}

func (q *ActivitySearchQuery) ToQuery() (queries.ActivitySearch, error) {
	date, err := optionalDate(q.Date)
	if err != nil {
		return queries.ActivitySearch{}, err
	}
	return queries.ActivitySearch{
		PageIndex: max(q.PageIndex, 0),
		PageSize:  min(patch.NonZero(q.PageSize, queries.DefaultPageSize), queries.MaxPageSize),
		Name:      q.Name,
		Date:      date,
		Capacity:  q.Capacity,
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
	}, nil
}

type SlotSearchQuery struct {
	PageIndex    int    `form:"pageIndex"`
	PageSize     int    `form:"pageSize"`
	Date         string `form:"date"`
	Participants int    `form:"participants"`
}

func (q *SlotSearchQuery) ToQuery() (queries.SlotSearch, error) {
	date, err := optionalDate(q.Date)
	if err != nil {
		return queries.SlotSearch{}, err
	}
	return queries.SlotSearch{
		PageIndex:    max(q.PageIndex, 0),
		PageSize:     min(patch.NonZero(q.PageSize, queries.DefaultPageSize), queries.MaxPageSize),
		Date:         date,
		Participants: q.Participants,
	}, nil
}

// SlotPayload is the slot as the browser listed it, capacity figures included.
type SlotPayload struct {
	ID        int64              `json:"id"`
	Date      calendar.Date      `json:"date"`
	StartTime calendar.ClockTime `json:"startTime"`
	EndTime   calendar.ClockTime `json:"endTime"`
	Capacity  int                `json:"capacity"`
	Occupied  int                `json:"occupied"`
}

type SlotBookingRequest struct {
	Slot         *SlotPayload `json:"slot"`
	Participants int          `json:"participants"`
}

func (r *SlotBookingRequest) ToDomain() usecase.SlotBooking {
	in := usecase.SlotBooking{Participants: r.Participants}
	if r.Slot != nil {
		in.Slot = &activity.Slot{
			ID:       r.Slot.ID,
			Date:     r.Slot.Date,
			Start:    r.Slot.StartTime,
			End:      r.Slot.EndTime,
			Capacity: r.Slot.Capacity,
			Occupied: r.Slot.Occupied,
		}
	}
	return in
}

// ActivityPayload is the JSON part "activity" of the multipart activity editor.
type ActivityPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Capacity    int             `json:"capacity"`
	Price       float64         `json:"price"`
	Categories  []string        `json:"categories"`
	Schedule    SchedulePayload `json:"schedule"`
}

type SchedulePayload struct {
	Kind   string             `json:"kind"`
	Date   calendar.Date      `json:"date"`
	From   calendar.ClockTime `json:"from"`
	To     calendar.ClockTime `json:"to"`
	Weekly []WeeklyPayload    `json:"weekly"`
}

type WeeklyPayload struct {
	Day  string             `json:"day"`
	From calendar.ClockTime `json:"from"`
	To   calendar.ClockTime `json:"to"`
}

func (p *ActivityPayload) ToDomain() activity.FormInput {
	weekly := make([]activity.WeeklyEntry, len(p.Schedule.Weekly))
	for i, w := range p.Schedule.Weekly {
		weekly[i] = activity.WeeklyEntry{Day: w.Day, From: w.From, To: w.To}
	}
	return activity.FormInput{
		Name:        p.Name,
		Description: p.Description,
		Capacity:    p.Capacity,
		Price:       p.Price,
		Categories:  p.Categories,
		Schedule: activity.ScheduleInput{
			Kind:   activity.ScheduleKind(p.Schedule.Kind),
			Date:   p.Schedule.Date,
			From:   p.Schedule.From,
			To:     p.Schedule.To,
			Weekly: weekly,
		},
	}
}
