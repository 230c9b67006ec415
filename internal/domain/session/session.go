package session

import (
	"strings"
	"time"
)

// Session is the per-request view of who is calling. It is rebuilt from the
// credential cookie on every request and never stored server side.
type Session struct {
	token     string
	email     string
	role      Role
	expiresAt time.Time
	checkedIn bool
}

func New(token, email string, role Role, expiresAt time.Time) Session {
	return Session{
		token:     token,
		email:     email,
		role:      role,
		expiresAt: expiresAt,
	}
}

// Anonymous is the session of a caller without credential.
func Anonymous() Session {
	return Session{role: RoleUndefined}
}

func (s Session) Token() string        { return s.token }
func (s Session) Email() string        { return s.email }
func (s Session) Role() Role           { return s.role }
func (s Session) ExpiresAt() time.Time { return s.expiresAt }
func (s Session) CheckedIn() bool      { return s.checkedIn }

func (s Session) WithCheckedIn(v bool) Session {
	s.checkedIn = v
	return s
}

// IsLoggedIn holds while a credential is present and exp lies strictly after now.
func (s Session) IsLoggedIn(now time.Time) bool {
	return s.token != "" && !s.expiresAt.IsZero() && s.expiresAt.After(now)
}

// IsSelf compares email case-insensitively against the session owner.
func (s Session) IsSelf(email string) bool {
	return s.email != "" && strings.EqualFold(strings.TrimSpace(email), s.email)
}
