package user

import "hotel-portal/internal/domain/session"

type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderDiverse Gender = "DIVERSE"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderDiverse:
		return true
	default:
		return false
	}
}

// RoleType is the authority assigned to an employee account.
type RoleType string

const (
	RoleTypeGuest         RoleType = session.AuthorityGuest
	RoleTypeAdmin         RoleType = session.AuthorityAdmin
	RoleTypeCleaningStaff RoleType = session.AuthorityCleaningStaff
	RoleTypeReceptionist  RoleType = session.AuthorityReceptionist
)

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) IsValid() bool {
	switch r {
	case RoleTypeGuest, RoleTypeAdmin, RoleTypeCleaningStaff, RoleTypeReceptionist:
		return true
	default:
		return false
	}
}

func NewRoleType(s string) (RoleType, error) {
	role := RoleType(s)
	if !role.IsValid() {
		return "", ErrInvalidRoleType
	}
	return role, nil
}
