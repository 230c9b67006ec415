//go:build unit

package usecase_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockBookingGateway
	clock    *clock.MockClock
	sess     session.Session
	uc       usecase.BookingUseCase
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockBookingGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	s.sess = authtest.Session(s.T(), "guest@hotel.com", session.RoleGuest, s.clock.Now())
	s.uc = usecase.NewBookingUseCase(s.gateway, s.clock, config.NewTestConfig(), testutil.Logger())
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func date(y int, m time.Month, d int) calendar.Date {
	return calendar.NewDate(y, m, d)
}

func (s *BookingUseCaseTestSuite) TestCreate_InvalidFormSendsNothing() {
	tests := []struct {
		name  string
		in    usecase.BookingInput
		errIs error
	}{
		{
			name:  "end equals start",
			in:    usecase.BookingInput{RoomID: 3, Start: date(2025, 5, 1), End: date(2025, 5, 1), PaymentMethod: booking.PayCash},
			errIs: booking.ErrEndBeforeStart,
		},
		{
			name:  "end before start",
			in:    usecase.BookingInput{RoomID: 3, Start: date(2025, 5, 3), End: date(2025, 5, 1), PaymentMethod: booking.PayCash},
			errIs: booking.ErrEndBeforeStart,
		},
		{
			name:  "no payment method",
			in:    usecase.BookingInput{RoomID: 3, Start: date(2025, 5, 1), End: date(2025, 5, 3)},
			errIs: booking.ErrIncompleteForm,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			// no gateway expectations: any backend call fails the test
			_, err := s.uc.Create(context.Background(), s.sess, tt.in)
			s.Require().ErrorIs(err, tt.errIs)
			s.Equal(http.StatusUnprocessableEntity, notice.StatusOf(err))
		})
	}
}

func (s *BookingUseCaseTestSuite) TestCreate_PayCash() {
	in := usecase.BookingInput{RoomID: 3, RoomName: "Suite", Start: date(2025, 5, 1), End: date(2025, 5, 3), PaymentMethod: booking.PayCash}

	s.gateway.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r booking.Request) (booking.Booking, error) {
			s.Equal(int64(3), r.RoomID)
			s.Equal(2, r.Stay.Nights())
			return booking.Booking{ID: 7, RoomID: 3}, nil
		})

	res, err := s.uc.Create(context.Background(), s.sess, in)
	s.Require().NoError(err)
	s.Equal(usecase.MsgBookingCreated, res.Message)
	s.Empty(res.RedirectURL)
	s.Equal(int64(7), res.Booking.ID)
}

func (s *BookingUseCaseTestSuite) TestCreate_PayInAdvance() {
	in := usecase.BookingInput{RoomID: 3, Start: date(2025, 5, 1), End: date(2025, 5, 3), PaymentMethod: booking.PayInAdvance}

	s.Run("redirects to checkout", func() {
		gomock.InOrder(
			s.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(booking.Booking{ID: 7}, nil),
			s.gateway.EXPECT().RoomCheckout(gomock.Any(), int64(3), int64(7)).
				Return(readmodel.CheckoutRM{URL: "https://pay.example.com/cs_1", SessionID: "cs_1"}, nil),
		)

		res, err := s.uc.Create(context.Background(), s.sess, in)
		s.Require().NoError(err)
		s.Equal("https://pay.example.com/cs_1", res.RedirectURL)
		s.Empty(res.Message)
	})

	s.Run("conflict shows first sentence", func() {
		s.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(booking.Booking{ID: 8}, nil)
		s.gateway.EXPECT().RoomCheckout(gomock.Any(), int64(3), int64(8)).
			Return(readmodel.CheckoutRM{}, &backend.APIError{Status: http.StatusConflict, Message: "Room already paid. Contact support."})

		_, err := s.uc.Create(context.Background(), s.sess, in)
		s.Require().Error(err)
		s.Equal(http.StatusConflict, notice.StatusOf(err))
		s.Equal("Room already paid", notice.Describe(err, notice.Default))
	})

	s.Run("other failure asks to retry", func() {
		s.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(booking.Booking{ID: 9}, nil)
		s.gateway.EXPECT().RoomCheckout(gomock.Any(), int64(3), int64(9)).
			Return(readmodel.CheckoutRM{}, &backend.APIError{Status: http.StatusInternalServerError})

		_, err := s.uc.Create(context.Background(), s.sess, in)
		s.Require().Error(err)
		s.Equal(usecase.MsgPaymentFailed, notice.Describe(err, notice.Default))
	})
}

func (s *BookingUseCaseTestSuite) TestCreate_BackendFieldErrors() {
	in := usecase.BookingInput{RoomID: 3, Start: date(2025, 5, 1), End: date(2025, 5, 3), PaymentMethod: booking.PayCash}
	s.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(booking.Booking{}, &backend.APIError{
		Status: http.StatusUnprocessableEntity,
		FieldErrors: []backend.FieldError{
			{Field: "startDate", Messages: []string{"Room is not available"}},
			{Field: "endDate", Messages: []string{"must be in the future", "too far ahead"}},
		},
	})

	_, err := s.uc.Create(context.Background(), s.sess, in)
	s.Require().Error(err)
	s.Equal(http.StatusUnprocessableEntity, notice.StatusOf(err))
	s.Equal("Room is not available must be in the future, too far ahead", err.Error())
}

func (s *BookingUseCaseTestSuite) TestQuote() {
	s.gateway.EXPECT().GetRoom(gomock.Any(), int64(3)).Return(room.Room{ID: 3, Price: 100}, nil)

	est, err := s.uc.Quote(context.Background(), 3, date(2025, 5, 1), date(2025, 5, 4))
	s.Require().NoError(err)
	s.Equal(int64(3), est.Quantity)
	s.Equal("300.00", est.PriceWithoutTax.String())
	s.Equal("330.00", est.Total.String())
}

func (s *BookingUseCaseTestSuite) TestMine() {
	bookings := []booking.Booking{
		{ID: 5, Stay: booking.StayOf(date(2025, 6, 1), date(2025, 6, 3)), Status: booking.StatusActive},
		{ID: 2, Stay: booking.StayOf(date(2025, 4, 1), date(2025, 4, 4)), Status: booking.StatusActive},
		{ID: 1, Stay: booking.StayOf(date(2025, 4, 1), date(2025, 4, 2)), Status: booking.StatusActive},
	}

	s.Run("sorted by start then id with check-in state", func() {
		s.gateway.EXPECT().MyBookings(gomock.Any()).Return(bookings, nil)
		s.gateway.EXPECT().CheckInStatus(gomock.Any()).Return([]booking.CheckInRecord{
			{BookingID: 2, Email: "guest@hotel.com"},
			{BookingID: 1, Email: booking.InvalidatedEmail},
		}, nil)

		got, err := s.uc.Mine(context.Background(), s.sess)
		s.Require().NoError(err)
		s.Require().Len(got, 3)

		s.Equal([]int64{1, 2, 5}, []int64{got[0].ID, got[1].ID, got[2].ID})
		s.Equal(booking.CheckedOut, got[0].CheckIn)
		s.Equal(booking.CheckedIn, got[1].CheckIn)
		s.Equal(booking.NotCheckedIn, got[2].CheckIn)
		s.True(got[1].Started)
		s.False(got[2].Started)
		s.True(got[0].IsActive)
		s.True(got[1].IsActive)
		s.False(got[2].IsActive)
	})

	s.Run("status failure keeps the list", func() {
		s.gateway.EXPECT().MyBookings(gomock.Any()).Return(bookings, nil)
		s.gateway.EXPECT().CheckInStatus(gomock.Any()).Return(nil, backend.ErrUnavailable)

		got, err := s.uc.Mine(context.Background(), s.sess)
		s.Require().NoError(err)
		for _, b := range got {
			s.Equal(booking.NotCheckedIn, b.CheckIn)
		}
	})
}

func (s *BookingUseCaseTestSuite) TestCancel() {
	s.Run("success", func() {
		s.gateway.EXPECT().CancelBooking(gomock.Any(), int64(4)).Return(nil)
		msg, err := s.uc.Cancel(context.Background(), s.sess, 4)
		s.Require().NoError(err)
		s.Equal(usecase.MsgBookingCancelled, msg)
	})

	s.Run("conflict", func() {
		s.gateway.EXPECT().CancelBooking(gomock.Any(), int64(4)).
			Return(&backend.APIError{Status: http.StatusConflict, Message: "Cancellation period has expired. Please call the hotel."})
		_, err := s.uc.Cancel(context.Background(), s.sess, 4)
		s.Equal("Cancellation period has expired", err.Error())
	})

	s.Run("other failure", func() {
		s.gateway.EXPECT().CancelBooking(gomock.Any(), int64(4)).Return(&backend.APIError{Status: http.StatusInternalServerError, Message: "boom"})
		_, err := s.uc.Cancel(context.Background(), s.sess, 4)
		s.Equal("Error canceling booking", err.Error())
	})
}

func (s *BookingUseCaseTestSuite) TestPaymentReturn() {
	s.Run("cancel leaves booking unpaid", func() {
		msg, err := s.uc.PaymentReturn(context.Background(), s.sess, 4, usecase.PaymentCancel)
		s.Require().NoError(err)
		s.Equal(usecase.MsgPaymentCancelled, msg)
	})

	s.Run("success confirms", func() {
		s.gateway.EXPECT().ConfirmPayment(gomock.Any(), int64(4)).Return(nil)
		msg, err := s.uc.PaymentReturn(context.Background(), s.sess, 4, usecase.PaymentSuccess)
		s.Require().NoError(err)
		s.Equal(usecase.MsgPaymentSucceeded, msg)
	})

	s.Run("unknown outcome", func() {
		_, err := s.uc.PaymentReturn(context.Background(), s.sess, 4, "maybe")
		s.ErrorIs(err, usecase.ErrInvalidOutcome)
	})
}

func (s *BookingUseCaseTestSuite) TestDocument_RejectsUnknownType() {
	_, err := s.uc.Document(context.Background(), s.sess, 4, "../secrets.pdf")
	s.ErrorIs(err, booking.ErrInvalidDocument)
}

func (s *BookingUseCaseTestSuite) TestPass() {
	s.Run("own booking renders png", func() {
		s.gateway.EXPECT().MyBookings(gomock.Any()).Return([]booking.Booking{{ID: 4, Number: "BK-2025-0004"}}, nil)
		png, err := s.uc.Pass(context.Background(), s.sess, 4)
		s.Require().NoError(err)
		s.True(bytes.HasPrefix(png, []byte("\x89PNG")))
	})

	s.Run("foreign booking", func() {
		s.gateway.EXPECT().MyBookings(gomock.Any()).Return([]booking.Booking{{ID: 4}}, nil)
		_, err := s.uc.Pass(context.Background(), s.sess, 99)
		s.ErrorIs(err, usecase.ErrBookingNotFound)
		s.Equal(http.StatusNotFound, notice.StatusOf(err))
	})
}

func (s *BookingUseCaseTestSuite) TestManager_OneStatusLookupPerGuest() {
	admin := authtest.Session(s.T(), "admin@hotel.com", session.RoleAdmin, s.clock.Now())
	page := readmodel.Page[readmodel.DetailedBookingRM]{
		TotalElements: 3,
		Content: []readmodel.DetailedBookingRM{
			{ID: 1, Email: "anna@hotel.com", Status: booking.StatusActive},
			{ID: 2, Email: "anna@hotel.com", Status: booking.StatusActive},
			{ID: 3, Email: "ben@hotel.com", Status: booking.StatusActive},
		},
	}
	s.gateway.EXPECT().ManagerBookings(gomock.Any(), gomock.Any()).Return(page, nil)
	s.gateway.EXPECT().GuestCheckInStatus(gomock.Any(), "anna@hotel.com").
		Return([]booking.CheckInRecord{{BookingID: 2, Email: "anna@hotel.com"}}, nil).Times(1)
	s.gateway.EXPECT().GuestCheckInStatus(gomock.Any(), "ben@hotel.com").
		Return(nil, backend.ErrUnavailable).Times(1)

	got, err := s.uc.Manager(context.Background(), admin, queries.PageRequest{})
	s.Require().NoError(err)
	s.Equal(3, got.TotalElements)
	s.Require().Len(got.Content, 3)
	s.Equal(booking.NotCheckedIn, got.Content[0].CheckIn)
	s.Equal(booking.CheckedIn, got.Content[1].CheckIn)
	s.Equal(booking.NotCheckedIn, got.Content[2].CheckIn)
}

func (s *BookingUseCaseTestSuite) TestManager_ActiveFirstThenStartDate() {
	admin := authtest.Session(s.T(), "admin@hotel.com", session.RoleAdmin, s.clock.Now())
	page := readmodel.Page[readmodel.DetailedBookingRM]{
		TotalElements: 4,
		Content: []readmodel.DetailedBookingRM{
			{ID: 1, Status: booking.StatusPending, Stay: booking.StayOf(date(2025, 3, 1), date(2025, 3, 2))},
			{ID: 2, Status: booking.StatusActive, Stay: booking.StayOf(date(2025, 5, 1), date(2025, 5, 3)), IsActive: true},
			{ID: 3, Status: booking.StatusCancelled, Stay: booking.StayOf(date(2025, 4, 1), date(2025, 4, 3))},
			{ID: 4, Status: booking.StatusActive, Stay: booking.StayOf(date(2025, 4, 2), date(2025, 4, 5))},
		},
	}
	s.gateway.EXPECT().ManagerBookings(gomock.Any(), gomock.Any()).Return(page, nil)

	got, err := s.uc.Manager(context.Background(), admin, queries.PageRequest{})
	s.Require().NoError(err)
	s.Require().Len(got.Content, 4)

	ids := make([]int64, len(got.Content))
	active := make([]bool, len(got.Content))
	for i, b := range got.Content {
		ids[i] = b.ID
		active[i] = b.IsActive
	}
	s.Equal([]int64{4, 2, 1, 3}, ids)
	// computed from the stay, not taken from the backend
	s.Equal([]bool{true, false, false, true}, active)
}

func TestPaymentOutcome_IsValid(t *testing.T) {
	assert.True(t, usecase.PaymentSuccess.IsValid())
	assert.True(t, usecase.PaymentCancel.IsValid())
	require.False(t, usecase.PaymentOutcome("").IsValid())
}
