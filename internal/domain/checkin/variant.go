package checkin

import (
	"strconv"
	"strings"

	"hotel-portal/internal/pkg/errs"
)

// ManualOwner is the owner segment of an add-to-room route created by staff.
const ManualOwner = "manual"

var ErrUnknownRoute = errs.New("route does not describe a check-in")

// Variant selects which check-in flow a page runs. The set is closed.
type Variant interface {
	Booking() int64
	// Staff reports whether the form is filled in on behalf of a guest.
	Staff() bool
	sealed()
}

// SelfCheckIn: the logged-in guest checks into their own booking.
type SelfCheckIn struct {
	BookingID int64
}

// StaffCheckIn: an admin checks in the booking owner at the front desk.
type StaffCheckIn struct {
	BookingID  int64
	GuestEmail string
}

// InviteAccept: an invited guest joins the owner's room.
type InviteAccept struct {
	BookingID  int64
	GuestEmail string
	OwnerEmail string
}

// ManualAddToRoom: staff adds a companion guest to an occupied room.
type ManualAddToRoom struct {
	BookingID  int64
	GuestEmail string
}

func (v SelfCheckIn) Booking() int64     { return v.BookingID }
func (v StaffCheckIn) Booking() int64    { return v.BookingID }
func (v InviteAccept) Booking() int64    { return v.BookingID }
func (v ManualAddToRoom) Booking() int64 { return v.BookingID }

func (SelfCheckIn) Staff() bool     { return false }
func (StaffCheckIn) Staff() bool    { return true }
func (InviteAccept) Staff() bool    { return false }
func (ManualAddToRoom) Staff() bool { return true }

func (SelfCheckIn) sealed()     {}
func (StaffCheckIn) sealed()    {}
func (InviteAccept) sealed()    {}
func (ManualAddToRoom) sealed() {}

// Route carries the path parameters of the check-in pages.
type Route struct {
	Kind       RouteKind
	BookingID  string
	Email      string
	OwnerEmail string
}

type RouteKind int

const (
	RouteCheckIn RouteKind = iota + 1
	RouteManualCheckIn
	RouteAddToRoom
)

// VariantFromRoute decides the flow once, from the page route.
func VariantFromRoute(r Route) (Variant, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.BookingID), 10, 64)
	if err != nil || id <= 0 {
		return nil, errs.Mark(errs.Newf("invalid booking id %q", r.BookingID), ErrUnknownRoute)
	}
	switch r.Kind {
	case RouteCheckIn:
		return SelfCheckIn{BookingID: id}, nil
	case RouteManualCheckIn:
		if r.Email == "" {
			return nil, ErrUnknownRoute
		}
		return StaffCheckIn{BookingID: id, GuestEmail: r.Email}, nil
	case RouteAddToRoom:
		if r.Email == "" {
			return nil, ErrUnknownRoute
		}
		if r.OwnerEmail == ManualOwner {
			return ManualAddToRoom{BookingID: id, GuestEmail: r.Email}, nil
		}
		return InviteAccept{BookingID: id, GuestEmail: r.Email, OwnerEmail: r.OwnerEmail}, nil
	default:
		return nil, ErrUnknownRoute
	}
}

// PrefillEmail is the address whose guest profile seeds the form.
func PrefillEmail(v Variant, sessionEmail string) string {
	switch v := v.(type) {
	case SelfCheckIn:
		return sessionEmail
	case StaffCheckIn:
		return v.GuestEmail
	case InviteAccept:
		return v.GuestEmail
	case ManualAddToRoom:
		return v.GuestEmail
	default:
		return ""
	}
}

// SuccessMessage is shown after a successful submit.
func SuccessMessage(v Variant) string {
	switch v.(type) {
	case ManualAddToRoom:
		return "The guest was added to the room successfully!"
	default:
		return "Check-in successful!"
	}
}

// NotFoundMessage is shown when the booking of a check-in page does not exist.
func NotFoundMessage(v Variant) string {
	switch v.(type) {
	case InviteAccept:
		return "The requested room booking does not exist"
	case ManualAddToRoom:
		return "The requested booking does not exist"
	default:
		return "The requested check-in does not exist"
	}
}
