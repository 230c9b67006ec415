package user

import "hotel-portal/internal/pkg/errs"

const EmployeePasswordMinLen = 6

var (
	ErrEmployeeName    = errs.Validation("First and last name must be between 2 and 100 characters.")
	ErrEmployeePhone   = errs.Validation("Phone number must be between 7 and 15 characters.")
	ErrInvalidRoleType = errs.Validation("Please select a valid role.")
)

// Employee is a staff account as listed by the backend.
type Employee struct {
	ID          int64
	Email       string
	FirstName   string
	LastName    string
	PhoneNumber string
	RoleType    RoleType
}

type EmployeeInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	RoleType    string
}

// EmployeeForm is a validated create or update payload. On update every
// empty field is left out and keeps its stored value.
type EmployeeForm struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	RoleType    RoleType
}

func NewEmployeeForm(in EmployeeInput, creating bool) (EmployeeForm, error) {
	var f EmployeeForm
	var ok bool

	if creating || in.FirstName != "" {
		if f.FirstName, ok = lengthBetween(in.FirstName, 2, 100); !ok {
			return EmployeeForm{}, ErrEmployeeName
		}
	}
	if creating || in.LastName != "" {
		if f.LastName, ok = lengthBetween(in.LastName, 2, 100); !ok {
			return EmployeeForm{}, ErrEmployeeName
		}
	}
	if in.PhoneNumber != "" {
		if f.PhoneNumber, ok = lengthBetween(in.PhoneNumber, 7, 15); !ok {
			return EmployeeForm{}, ErrEmployeePhone
		}
	}
	if creating || in.Email != "" {
		email, err := NewEmail(in.Email)
		if err != nil {
			return EmployeeForm{}, err
		}
		f.Email = email.Value()
	}
	if creating || in.Password != "" {
		pw, err := NewPassword(in.Password, EmployeePasswordMinLen)
		if err != nil {
			return EmployeeForm{}, err
		}
		f.Password = pw.Value()
	}
	if creating || in.RoleType != "" {
		role, err := NewRoleType(in.RoleType)
		if err != nil {
			return EmployeeForm{}, err
		}
		f.RoleType = role
	}
	return f, nil
}
