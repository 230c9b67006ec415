package request

import (
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/usecase/queries"
)

type RoomSearchQuery struct {
	PageQuery
	StartDate string  `form:"startDate"`
	EndDate   string  `form:"endDate"`
	Capacity  int     `form:"capacity"`
	MinPrice  float64 `form:"minPrice"`
	MaxPrice  float64 `form:"maxPrice"`
}

func (q *RoomSearchQuery) ToQuery() (queries.RoomSearch, error) {
	start, err := optionalDate(q.StartDate)
	if err != nil {
		return queries.RoomSearch{}, err
	}
	end, err := optionalDate(q.EndDate)
	if err != nil {
		return queries.RoomSearch{}, err
	}
	return queries.RoomSearch{
		PageRequest: q.PageQuery.ToQuery(),
		StartDate:   start,
		EndDate:     end,
		Capacity:    q.Capacity,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
	}, nil
}

type RoomAdminSearchQuery struct {
	PageQuery
	Name        string  `form:"name"`
	Description string  `form:"description"`
	MinCapacity int     `form:"minCapacity"`
	MaxCapacity int     `form:"maxCapacity"`
	MinPrice    float64 `form:"minPrice"`
	MaxPrice    float64 `form:"maxPrice"`
}

func (q *RoomAdminSearchQuery) ToQuery() queries.RoomAdminSearch {
	return queries.RoomAdminSearch{
		PageRequest: q.PageQuery.ToQuery(),
		Name:        q.Name,
		Description: q.Description,
		MinCapacity: q.MinCapacity,
		MaxCapacity: q.MaxCapacity,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
	}
}

type QuoteQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

func (q *QuoteQuery) ToDomain() (start, end calendar.Date, err error) {
	if start, err = optionalDate(q.StartDate); err != nil {
		return
	}
	end, err = optionalDate(q.EndDate)
	return
}

// RoomForm is the multipart room editor. Images travel as the files
// "mainImage" and "additionalImages".
type RoomForm struct {
	Name        string  `form:"name"`
	Description string  `form:"description"`
	Capacity    int     `form:"capacity"`
	Price       float64 `form:"price"`
	SmartLockID string  `form:"smartLockId"`
}

func (f *RoomForm) ToDomain() room.FormInput {
	return room.FormInput{
		Name:        f.Name,
		Description: f.Description,
		Capacity:    f.Capacity,
		Price:       f.Price,
		SmartLockID: f.SmartLockID,
	}
}
