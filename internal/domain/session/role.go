package session

type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleReceptionist  Role = "RECEPTIONIST"
	RoleCleaningStaff Role = "CLEANING_STAFF"
	RoleGuest         Role = "GUEST"
	RoleUndefined     Role = "UNDEFINED"
)

// Authority strings as they appear in the token's rol claim.
const (
	AuthorityAdmin         = "ROLE_ADMIN"
	AuthorityReceptionist  = "ROLE_RECEPTIONIST"
	AuthorityCleaningStaff = "ROLE_CLEANING_STAFF"
	AuthorityGuest         = "ROLE_GUEST"
)

var rolePrecedence = []struct {
	authority string
	role      Role
}{
	{AuthorityAdmin, RoleAdmin},
	{AuthorityReceptionist, RoleReceptionist},
	{AuthorityCleaningStaff, RoleCleaningStaff},
	{AuthorityGuest, RoleGuest},
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsCleaner reports whether the role may use the cleaning board.
func (r Role) IsCleaner() bool {
	return r == RoleCleaningStaff || r == RoleAdmin
}

// RoleFromClaims picks the highest-ranked role present in authorities.
func RoleFromClaims(authorities []string) Role {
	for _, p := range rolePrecedence {
		for _, a := range authorities {
			if a == p.authority {
				return p.role
			}
		}
	}
	return RoleUndefined
}
