package response

import (
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/usecase/readmodel"
)

type GuestSummaryResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func FromGuestSummaries(rows []readmodel.GuestRM) []GuestSummaryResponse {
	return mapSlice(rows, func(g readmodel.GuestRM) GuestSummaryResponse {
		var res GuestSummaryResponse
		copyFields(&res, &g)
		return res
	})
}

func FromGuestSummaryPage(p readmodel.Page[readmodel.GuestRM]) Page[GuestSummaryResponse] {
	return Page[GuestSummaryResponse]{Content: FromGuestSummaries(p.Content), TotalElements: p.TotalElements}
}

type GuestResponse struct {
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	DateOfBirth    calendar.Date `json:"dateOfBirth"`
	PlaceOfBirth   string        `json:"placeOfBirth"`
	Gender         user.Gender   `json:"gender"`
	Nationality    string        `json:"nationality"`
	Address        string        `json:"address"`
	PassportNumber string        `json:"passportNumber"`
	PhoneNumber    string        `json:"phoneNumber"`
}

func FromGuest(g user.Guest) GuestResponse {
	var res GuestResponse
	copyFields(&res, &g)
	return res
}

type GuestSavedResponse struct {
	Guest   GuestResponse `json:"guest"`
	Message string        `json:"message"`
}

type EmployeeResponse struct {
	ID          int64         `json:"id"`
	Email       string        `json:"email"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	PhoneNumber string        `json:"phoneNumber"`
	RoleType    user.RoleType `json:"roleType"`
}

func FromEmployee(e user.Employee) EmployeeResponse {
	var res EmployeeResponse
	copyFields(&res, &e)
	return res
}

func FromEmployees(rows []user.Employee) []EmployeeResponse {
	return mapSlice(rows, FromEmployee)
}

type EmployeeSavedResponse struct {
	Employee EmployeeResponse `json:"employee"`
	Message  string           `json:"message"`
}
