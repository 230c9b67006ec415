package checkin

import (
	"regexp"
	"strings"

	"hotel-portal/internal/pkg/errs"
)

var (
	ErrInvalidInviteEmail = errs.Validation("Invalid email address.")
	ErrAlreadyInRoom      = errs.Validation("This guest is already added to the room.")
	ErrSelfInvite         = errs.Validation("Cannot add yourself to the room.")
)

var inviteEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Invite asks the backend to send a room invitation to Email.
type Invite struct {
	BookingID  int64
	Email      string
	OwnerEmail string
}

// NewInvite rejects malformed addresses, guests already in the room and the
// owner inviting themselves. Comparisons ignore case.
func NewInvite(bookingID int64, email, ownerEmail string, roomGuests []string) (Invite, error) {
	email = strings.TrimSpace(email)
	if !inviteEmailRegex.MatchString(email) {
		return Invite{}, ErrInvalidInviteEmail
	}
	for _, g := range roomGuests {
		if strings.EqualFold(g, email) {
			return Invite{}, ErrAlreadyInRoom
		}
	}
	if strings.EqualFold(email, ownerEmail) {
		return Invite{}, ErrSelfInvite
	}
	return Invite{BookingID: bookingID, Email: email, OwnerEmail: ownerEmail}, nil
}
