package backend

import (
	"context"
	"net/http"
	"net/url"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/checkin"
	"hotel-portal/internal/domain/cleaning"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/pkg/errs"
	"hotel-portal/internal/usecase/readmodel"
)

var ErrUnknownVariant = errs.New("unknown check-in variant")

// MyRooms lists the rooms the caller is currently checked into.
func (c *Client) MyRooms(ctx context.Context) ([]room.Room, error) {
	var dtos []roomDTO
	if err := c.getJSON(ctx, "checkin.rooms", "/checkin/rooms", nil, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, c.detailRoom), nil
}

// CheckInBooking loads the booking a check-in page works on. Self and invite
// flows read it as the caller; staff flows read it on behalf of the guest.
func (c *Client) CheckInBooking(ctx context.Context, v checkin.Variant) (booking.Booking, error) {
	var path string
	switch v := v.(type) {
	case checkin.SelfCheckIn, checkin.InviteAccept:
		path = "/checkin/" + formatID(v.Booking())
	case checkin.StaffCheckIn:
		path = "/manual-checkin/" + formatID(v.BookingID) + "/" + url.PathEscape(v.GuestEmail)
	case checkin.ManualAddToRoom:
		path = "/manual-checkin/" + formatID(v.BookingID) + "/" + url.PathEscape(v.GuestEmail)
	default:
		return booking.Booking{}, ErrUnknownVariant
	}
	var dto bookingDTO
	if err := c.getJSON(ctx, "checkin.booking", path, nil, &dto); err != nil {
		return booking.Booking{}, err
	}
	return toBooking(dto), nil
}

func checkInForm(s checkin.Submission) *multipartForm {
	d := s.Details
	doc := File{Name: s.Document.Name, ContentType: s.Document.ContentType, Content: s.Document.Content}
	return newForm().
		intField("bookingId", s.Variant.Booking()).
		field("firstName", d.FirstName).
		field("lastName", d.LastName).
		field("dateOfBirth", d.DateOfBirth.String()).
		field("placeOfBirth", d.PlaceOfBirth).
		field("gender", d.Gender).
		field("nationality", d.Nationality).
		field("address", d.Address).
		field("passportNumber", d.PassportNumber).
		field("phoneNumber", d.PhoneNumber).
		file("passport", &doc)
}

// SubmitCheckIn posts the form to the endpoint of the submission's variant.
func (c *Client) SubmitCheckIn(ctx context.Context, s checkin.Submission) error {
	form := checkInForm(s)
	switch v := s.Variant.(type) {
	case checkin.SelfCheckIn:
		return c.sendForm(ctx, "checkin.self", http.MethodPost, "/checkin", form, nil)
	case checkin.StaffCheckIn:
		return c.sendForm(ctx, "checkin.staff", http.MethodPost, "/manual-checkin/"+url.PathEscape(v.GuestEmail), form, nil)
	case checkin.InviteAccept:
		return c.sendForm(ctx, "checkin.invite", http.MethodPost, "/manual-checkin/"+url.PathEscape(v.GuestEmail), form, nil)
	case checkin.ManualAddToRoom:
		form.field("email", v.GuestEmail)
		return c.sendForm(ctx, "checkin.add_to_room", http.MethodPost, "/manual-checkin/to-room", form, nil)
	default:
		return ErrUnknownVariant
	}
}

// CheckInStatus lists the caller's check-in records.
func (c *Client) CheckInStatus(ctx context.Context) ([]booking.CheckInRecord, error) {
	var dtos []checkInStatusDTO
	if err := c.getJSON(ctx, "checkin.status", "/checkin/checkin-status", nil, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, toCheckInRecord), nil
}

// GuestCheckInStatus lists the check-in records of another guest.
func (c *Client) GuestCheckInStatus(ctx context.Context, email string) ([]booking.CheckInRecord, error) {
	var dtos []checkInStatusDTO
	if err := c.getJSON(ctx, "checkin.guest_status", "/manual-checkin/checkin-status/"+url.PathEscape(email), nil, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, toCheckInRecord), nil
}

func (c *Client) CheckOut(ctx context.Context, bookingID int64, email string) error {
	return c.sendJSON(ctx, "checkin.checkout", http.MethodPost, "/checkin/checkout",
		checkOutDTO{BookingID: bookingID, Email: email}, nil)
}

// StaffCheckOut checks a guest out on their behalf.
func (c *Client) StaffCheckOut(ctx context.Context, bookingID int64, email string) error {
	return c.sendJSON(ctx, "checkin.staff_checkout", http.MethodPost, "/manual-checkin/checkout",
		checkOutDTO{BookingID: bookingID, Email: email}, nil)
}

// RoomBooking returns the booking through which the caller occupies roomID.
func (c *Client) RoomBooking(ctx context.Context, roomID int64) (booking.Booking, error) {
	var dto bookingDTO
	if err := c.getJSON(ctx, "checkin.room_booking", "/checkin/booking/"+formatID(roomID), nil, &dto); err != nil {
		return booking.Booking{}, err
	}
	return toBooking(dto), nil
}

func (c *Client) InviteToRoom(ctx context.Context, inv checkin.Invite) error {
	body := inviteDTO{BookingID: inv.BookingID, Email: inv.Email, OwnerEmail: inv.OwnerEmail}
	return c.sendJSON(ctx, "checkin.invite_send", http.MethodPost, "/checkin/to-room", body, nil)
}

// RoomGuests lists the guests checked in under a booking, as seen by one of them.
func (c *Client) RoomGuests(ctx context.Context, bookingID int64) ([]readmodel.GuestRM, error) {
	var dtos []guestListDTO
	if err := c.getJSON(ctx, "checkin.guests", "/checkin/guests/"+formatID(bookingID), nil, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, toGuestRM), nil
}

// AllRoomGuests is the staff variant of RoomGuests.
func (c *Client) AllRoomGuests(ctx context.Context, bookingID int64) ([]readmodel.GuestRM, error) {
	var dtos []guestListDTO
	if err := c.getJSON(ctx, "checkin.all_guests", "/manual-checkin/all-guests/"+formatID(bookingID), nil, &dtos); err != nil {
		return nil, err
	}
	return mapSlice(dtos, toGuestRM), nil
}

// IsOwner reports whether the caller booked bookingID themselves.
func (c *Client) IsOwner(ctx context.Context, bookingID int64) (bool, error) {
	var owner bool
	if err := c.getJSON(ctx, "checkin.owner", "/checkin/owner/"+formatID(bookingID), nil, &owner); err != nil {
		return false, err
	}
	return owner, nil
}

// Occupied reports whether a guest is checked into roomID right now.
func (c *Client) Occupied(ctx context.Context, roomID int64) (bool, error) {
	var dto occupancyDTO
	if err := c.getJSON(ctx, "checkin.occupancy", "/manual-checkin/occupancy/"+formatID(roomID), nil, &dto); err != nil {
		return false, err
	}
	return dto.Status == cleaning.Occupied, nil
}

func (c *Client) RemoveGuest(ctx context.Context, bookingID int64, email string) error {
	return c.sendJSON(ctx, "checkin.remove_guest", http.MethodDelete,
		"/manual-checkin/"+formatID(bookingID)+"/"+url.PathEscape(email), nil, nil)
}
