package request

import (
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/pkg/patch"
	"hotel-portal/internal/usecase/queries"
)

type GuestSearchQuery struct {
	PageQuery
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"`
}

func (q *GuestSearchQuery) ToQuery() queries.GuestSearch {
	return queries.GuestSearch{
		PageRequest: q.PageQuery.ToQuery(),
		FirstName:   q.FirstName,
		LastName:    q.LastName,
		Email:       q.Email,
	}
}

type GuestRequest struct {
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	DateOfBirth    calendar.Date `json:"dateOfBirth"`
	PlaceOfBirth   string        `json:"placeOfBirth"`
	Gender         string        `json:"gender"`
	Nationality    string        `json:"nationality"`
	Address        string        `json:"address"`
	PassportNumber string        `json:"passportNumber"`
	PhoneNumber    string        `json:"phoneNumber"`
	Password       *string       `json:"password"`
}

func (r *GuestRequest) ToDomain() user.GuestInput {
	return user.GuestInput{
		Guest: user.Guest{
			FirstName:      r.FirstName,
			LastName:       r.LastName,
			Email:          r.Email,
			DateOfBirth:    r.DateOfBirth,
			PlaceOfBirth:   r.PlaceOfBirth,
			Gender:         user.Gender(r.Gender),
			Nationality:    r.Nationality,
			Address:        r.Address,
			PassportNumber: r.PassportNumber,
			PhoneNumber:    r.PhoneNumber,
		},
		Password: patch.Coalesce(r.Password, ""),
	}
}

// EmployeeRequest serves create and update. On update an omitted password
// keeps the current one.
type EmployeeRequest struct {
	Email       string  `json:"email"`
	Password    *string `json:"password"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber string  `json:"phoneNumber"`
	RoleType    string  `json:"roleType"`
}

func (r *EmployeeRequest) ToDomain() user.EmployeeInput {
	return user.EmployeeInput{
		Email:       r.Email,
		Password:    patch.Coalesce(r.Password, ""),
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		RoleType:    r.RoleType,
	}
}
