//go:build unit

package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/checkin"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/user"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/notice"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckInUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockCheckInGateway
	guest    session.Session
	admin    session.Session
	uc       usecase.CheckInUseCase
}

func (s *CheckInUseCaseTestSuite) SetupTest() {
	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockCheckInGateway(s.mockCtrl)
	s.guest = authtest.Session(s.T(), "anna@hotel.com", session.RoleGuest, now)
	s.admin = authtest.Session(s.T(), "desk@hotel.com", session.RoleAdmin, now)
	s.uc = usecase.NewCheckInUseCase(s.gateway, testutil.Logger())
}

func (s *CheckInUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckInUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckInUseCaseTestSuite))
}

func completeDetails() checkin.GuestDetails {
	return checkin.GuestDetails{
		FirstName:      "Anna",
		LastName:       "Huber",
		DateOfBirth:    date(1990, 5, 17),
		PlaceOfBirth:   "Graz",
		Gender:         "FEMALE",
		Nationality:    "Austria",
		Address:        "Hauptplatz 1, 8010 Graz",
		PassportNumber: "P1234567",
		PhoneNumber:    "+43 316 123456",
	}
}

func passport() *checkin.Document {
	return &checkin.Document{Name: "passport.pdf", ContentType: "application/pdf", Size: 3, Content: []byte("pdf")}
}

func (s *CheckInUseCaseTestSuite) TestPrepare() {
	s.Run("self check-in prefills from profile", func() {
		s.gateway.EXPECT().CheckInBooking(gomock.Any(), checkin.SelfCheckIn{BookingID: 12}).
			Return(booking.Booking{ID: 12, Price: 100, Stay: booking.StayOf(date(2025, 1, 1), date(2025, 1, 3))}, nil)
		s.gateway.EXPECT().GetGuest(gomock.Any(), "anna@hotel.com").
			Return(user.Guest{FirstName: "Anna", LastName: "Huber"}, nil)

		form, err := s.uc.Prepare(context.Background(), s.guest, checkin.SelfCheckIn{BookingID: 12})
		s.Require().NoError(err)
		s.Equal(int64(2), form.Price.Quantity)
		s.Equal("200.00", form.Price.PriceWithoutTax.String())
		s.Equal("20.00", form.Price.Tax.String())
		s.Equal("220.00", form.Price.Total.String())
		s.Equal("anna@hotel.com", form.Email)
		s.Equal("Anna", form.Details.FirstName)
		s.Equal("Check in", form.SubmitLabel)
	})

	s.Run("missing profile leaves form empty", func() {
		s.gateway.EXPECT().CheckInBooking(gomock.Any(), gomock.Any()).Return(booking.Booking{ID: 12}, nil)
		s.gateway.EXPECT().GetGuest(gomock.Any(), "anna@hotel.com").
			Return(user.Guest{}, &backend.APIError{Status: http.StatusNotFound})

		form, err := s.uc.Prepare(context.Background(), s.guest, checkin.SelfCheckIn{BookingID: 12})
		s.Require().NoError(err)
		s.Empty(form.Details.FirstName)
	})

	s.Run("unknown booking per variant", func() {
		v := checkin.InviteAccept{BookingID: 12, GuestEmail: "anna@hotel.com", OwnerEmail: "ben@hotel.com"}
		s.gateway.EXPECT().CheckInBooking(gomock.Any(), v).Return(booking.Booking{}, &backend.APIError{Status: http.StatusNotFound})

		_, err := s.uc.Prepare(context.Background(), s.guest, v)
		s.Require().Error(err)
		s.Equal("The requested room booking does not exist", err.Error())
		s.Equal(http.StatusNotFound, notice.StatusOf(err))
	})

	s.Run("staff variant needs an admin", func() {
		_, err := s.uc.Prepare(context.Background(), s.guest, checkin.ManualAddToRoom{BookingID: 12, GuestEmail: "ben@hotel.com"})
		s.ErrorIs(err, usecase.ErrStaffOnly)
	})

	s.Run("add to room label", func() {
		v := checkin.ManualAddToRoom{BookingID: 12, GuestEmail: "ben@hotel.com"}
		s.gateway.EXPECT().CheckInBooking(gomock.Any(), v).Return(booking.Booking{ID: 12}, nil)
		s.gateway.EXPECT().GetGuest(gomock.Any(), "ben@hotel.com").Return(user.Guest{}, nil)

		form, err := s.uc.Prepare(context.Background(), s.admin, v)
		s.Require().NoError(err)
		s.Equal("Add to room", form.SubmitLabel)
	})
}

func (s *CheckInUseCaseTestSuite) TestSubmit() {
	s.Run("missing passport sends nothing", func() {
		_, err := s.uc.Submit(context.Background(), s.guest, checkin.SelfCheckIn{BookingID: 12}, completeDetails(), nil)
		s.ErrorIs(err, checkin.ErrPassportMissingSelf)
	})

	s.Run("incomplete staff form", func() {
		details := completeDetails()
		details.PhoneNumber = ""
		_, err := s.uc.Submit(context.Background(), s.admin, checkin.StaffCheckIn{BookingID: 12, GuestEmail: "anna@hotel.com"}, details, passport())
		s.ErrorIs(err, checkin.ErrDetailsMissingStaff)
	})

	s.Run("success", func() {
		s.gateway.EXPECT().SubmitCheckIn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub checkin.Submission) error {
				s.Equal(int64(12), sub.Variant.Booking())
				s.Equal("passport.pdf", sub.Document.Name)
				return nil
			})

		msg, err := s.uc.Submit(context.Background(), s.guest, checkin.SelfCheckIn{BookingID: 12}, completeDetails(), passport())
		s.Require().NoError(err)
		s.Equal("Check-in successful!", msg)
	})
}
