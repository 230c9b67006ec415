package response

import (
	"time"

	"hotel-portal/internal/domain/access"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/uiconfig"
)

type SessionResponse struct {
	LoggedIn  bool       `json:"loggedIn"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	CheckedIn bool       `json:"checkedIn"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func FromSession(s session.Session, now time.Time) SessionResponse {
	if !s.IsLoggedIn(now) {
		return SessionResponse{Role: session.RoleUndefined.String()}
	}
	exp := s.ExpiresAt()
	return SessionResponse{
		LoggedIn:  true,
		Email:     s.Email(),
		Role:      s.Role().String(),
		CheckedIn: s.CheckedIn(),
		ExpiresAt: &exp,
	}
}

type DecisionResponse = access.Decision

func FromModules(m map[uiconfig.Module]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}
