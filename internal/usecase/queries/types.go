package queries

import "hotel-portal/internal/domain/calendar"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest uses the backend's zero-based page numbering.
type PageRequest struct {
	Page int `url:"page" form:"page"`
	Size int `url:"size" form:"size"`
}

// Normalize clamps the request into the accepted range.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// RoomSearch filters the public room listing.
type RoomSearch struct {
	PageRequest
	StartDate calendar.Date `url:"startDate,omitempty"`
	EndDate   calendar.Date `url:"endDate,omitempty"`
	Capacity  int           `url:"capacity,omitempty"`
	MinPrice  float64       `url:"minPrice,omitempty"`
	MaxPrice  float64       `url:"maxPrice,omitempty"`
}

// RoomAdminSearch filters the manager's room listing.
type RoomAdminSearch struct {
	PageRequest
	Name        string  `url:"name,omitempty"`
	Description string  `url:"description,omitempty"`
	MinCapacity int     `url:"minCapacity,omitempty"`
	MaxCapacity int     `url:"maxCapacity,omitempty"`
	MinPrice    float64 `url:"minPrice,omitempty"`
	MaxPrice    float64 `url:"maxPrice,omitempty"`
}

// ActivitySearch filters the activity listing. The activity endpoints use
// pageIndex/pageSize instead of page/size.
type ActivitySearch struct {
	PageIndex int           `url:"pageIndex"`
	PageSize  int           `url:"pageSize"`
	Name      string        `url:"name,omitempty"`
	Date      calendar.Date `url:"date,omitempty"`
	Capacity  int           `url:"capacity,omitempty"`
	MinPrice  float64       `url:"minPrice,omitempty"`
	MaxPrice  float64       `url:"maxPrice,omitempty"`
}

func (s ActivitySearch) IsEmpty() bool {
	return s.Name == "" && s.Date.IsZero() && s.Capacity == 0 && s.MinPrice == 0 && s.MaxPrice == 0
}

// SlotSearch pages through an activity's slots.
type SlotSearch struct {
	PageIndex    int           `url:"pageIndex"`
	PageSize     int           `url:"pageSize"`
	Date         calendar.Date `url:"date,omitempty"`
	Participants int           `url:"participants,omitempty"`
}

// GuestSearch filters the admin guest list.
type GuestSearch struct {
	PageRequest
	FirstName string `url:"firstName,omitempty"`
	LastName  string `url:"lastName,omitempty"`
	Email     string `url:"email,omitempty"`
}

func (s GuestSearch) IsEmpty() bool {
	return s.FirstName == "" && s.LastName == "" && s.Email == ""
}
