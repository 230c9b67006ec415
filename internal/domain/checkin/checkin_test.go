//go:build unit

package checkin_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/checkin"
)

func TestVariantFromRoute(t *testing.T) {
	tests := []struct {
		name  string
		route checkin.Route
		want  checkin.Variant
		err   bool
	}{
		{
			name:  "self check-in",
			route: checkin.Route{Kind: checkin.RouteCheckIn, BookingID: "7"},
			want:  checkin.SelfCheckIn{BookingID: 7},
		},
		{
			name:  "staff check-in",
			route: checkin.Route{Kind: checkin.RouteManualCheckIn, BookingID: "7", Email: "g@h.com"},
			want:  checkin.StaffCheckIn{BookingID: 7, GuestEmail: "g@h.com"},
		},
		{
			name:  "invite accept",
			route: checkin.Route{Kind: checkin.RouteAddToRoom, BookingID: "7", Email: "g@h.com", OwnerEmail: "o@h.com"},
			want:  checkin.InviteAccept{BookingID: 7, GuestEmail: "g@h.com", OwnerEmail: "o@h.com"},
		},
		{
			name:  "manual add to room",
			route: checkin.Route{Kind: checkin.RouteAddToRoom, BookingID: "7", Email: "g@h.com", OwnerEmail: checkin.ManualOwner},
			want:  checkin.ManualAddToRoom{BookingID: 7, GuestEmail: "g@h.com"},
		},
		{name: "non numeric id", route: checkin.Route{Kind: checkin.RouteCheckIn, BookingID: "abc"}, err: true},
		{name: "staff without email", route: checkin.Route{Kind: checkin.RouteManualCheckIn, BookingID: "7"}, err: true},
		{name: "unknown kind", route: checkin.Route{BookingID: "7"}, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checkin.VariantFromRoute(tt.route)
			if tt.err {
				assert.ErrorIs(t, err, checkin.ErrUnknownRoute)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrefillAndMessages(t *testing.T) {
	self := checkin.SelfCheckIn{BookingID: 1}
	manual := checkin.ManualAddToRoom{BookingID: 1, GuestEmail: "g@h.com"}
	invite := checkin.InviteAccept{BookingID: 1, GuestEmail: "i@h.com", OwnerEmail: "o@h.com"}

	assert.Equal(t, "me@h.com", checkin.PrefillEmail(self, "me@h.com"))
	assert.Equal(t, "g@h.com", checkin.PrefillEmail(manual, "me@h.com"))
	assert.Equal(t, "i@h.com", checkin.PrefillEmail(invite, "me@h.com"))

	assert.Equal(t, "Check-in successful!", checkin.SuccessMessage(self))
	assert.Equal(t, "The guest was added to the room successfully!", checkin.SuccessMessage(manual))
	assert.Equal(t, "The requested room booking does not exist", checkin.NotFoundMessage(invite))
}

func completeDetails() checkin.GuestDetails {
	return checkin.GuestDetails{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		DateOfBirth:    calendar.NewDate(1990, time.December, 10),
		PlaceOfBirth:   "London",
		Gender:         "FEMALE",
		Nationality:    "British",
		Address:        "1 Main St",
		PassportNumber: "P123",
		PhoneNumber:    "+4312345",
	}
}

func pdf(size int64) *checkin.Document {
	return &checkin.Document{Name: "passport.pdf", ContentType: checkin.PDFContentType, Size: size}
}

func TestNewSubmission(t *testing.T) {
	self := checkin.SelfCheckIn{BookingID: 1}
	staff := checkin.StaffCheckIn{BookingID: 1, GuestEmail: "g@h.com"}

	t.Run("complete submission", func(t *testing.T) {
		sub, err := checkin.NewSubmission(self, completeDetails(), pdf(1024))
		require.NoError(t, err)
		assert.Equal(t, "passport.pdf", sub.Document.Name)
	})

	t.Run("missing passport wording depends on who fills the form", func(t *testing.T) {
		_, err := checkin.NewSubmission(self, completeDetails(), nil)
		assert.ErrorIs(t, err, checkin.ErrPassportMissingSelf)

		_, err = checkin.NewSubmission(staff, completeDetails(), nil)
		assert.ErrorIs(t, err, checkin.ErrPassportMissingStaff)
	})

	t.Run("non pdf", func(t *testing.T) {
		doc := &checkin.Document{Name: "scan.png", ContentType: "image/png", Size: 10}
		_, err := checkin.NewSubmission(self, completeDetails(), doc)
		require.ErrorIs(t, err, checkin.ErrDocumentType)
		assert.EqualError(t, err, "Invalid file type: image/png. Allowed type is PDF.")
	})

	t.Run("too large", func(t *testing.T) {
		_, err := checkin.NewSubmission(self, completeDetails(), pdf(11*1024*1024))
		require.ErrorIs(t, err, checkin.ErrDocumentTooLarge)
		assert.EqualError(t, err, "File size exceeds the 10 MB limit: passport.pdf (11.00 MB).")
	})

	t.Run("exactly 10 MB passes", func(t *testing.T) {
		_, err := checkin.NewSubmission(self, completeDetails(), pdf(checkin.MaxDocumentSize))
		assert.NoError(t, err)
	})

	t.Run("incomplete form", func(t *testing.T) {
		details := completeDetails()
		details.PassportNumber = " "

		_, err := checkin.NewSubmission(self, details, pdf(10))
		assert.ErrorIs(t, err, checkin.ErrDetailsMissingSelf)

		_, err = checkin.NewSubmission(staff, details, pdf(10))
		assert.ErrorIs(t, err, checkin.ErrDetailsMissingStaff)
	})
}

func TestNewInvite(t *testing.T) {
	guests := []string{"Friend@Hotel.com"}

	inv, err := checkin.NewInvite(3, "new@hotel.com", "owner@hotel.com", guests)
	require.NoError(t, err)
	assert.Equal(t, checkin.Invite{BookingID: 3, Email: "new@hotel.com", OwnerEmail: "owner@hotel.com"}, inv)

	_, err = checkin.NewInvite(3, "not-an-email", "owner@hotel.com", guests)
	assert.ErrorIs(t, err, checkin.ErrInvalidInviteEmail)

	_, err = checkin.NewInvite(3, "friend@hotel.com", "owner@hotel.com", guests)
	assert.ErrorIs(t, err, checkin.ErrAlreadyInRoom)

	_, err = checkin.NewInvite(3, "OWNER@hotel.com", "owner@hotel.com", nil)
	assert.ErrorIs(t, err, checkin.ErrSelfInvite)
}
