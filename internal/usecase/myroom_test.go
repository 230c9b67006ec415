//go:build unit

package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/booking"
	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/checkin"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/infra/kvstore"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/notice"
	"hotel-portal/internal/usecase/readmodel"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MyRoomUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockMyRoomGateway
	cleaning *usecasemock.MockCleaningGateway
	clock    *clock.MockClock
	kv       *kvstore.MemoryStore
	sess     session.Session
	uc       usecase.MyRoomUseCase
}

func (s *MyRoomUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockMyRoomGateway(s.mockCtrl)
	s.cleaning = usecasemock.NewMockCleaningGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	s.kv = kvstore.NewMemoryStore(s.clock, "test", testutil.Logger())
	s.sess = authtest.Session(s.T(), "guest@hotel.com", session.RoleGuest, s.clock.Now())
	s.uc = usecase.NewMyRoomUseCase(s.gateway, s.kv, s.clock, config.NewTestConfig(), testutil.Logger())
}

func (s *MyRoomUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMyRoomUseCaseSuite(t *testing.T) {
	suite.Run(t, new(MyRoomUseCaseTestSuite))
}

func (s *MyRoomUseCaseTestSuite) TestInvite_RejectedBeforeAnyRequest() {
	tests := []struct {
		name  string
		email string
		errIs error
	}{
		{name: "self invite", email: "guest@hotel.com", errIs: checkin.ErrSelfInvite},
		{name: "self invite ignores case", email: " Guest@Hotel.com ", errIs: checkin.ErrSelfInvite},
		{name: "malformed address", email: "not-an-email", errIs: checkin.ErrInvalidInviteEmail},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Invite(context.Background(), s.sess, 5, tt.email)
			s.Require().ErrorIs(err, tt.errIs)
		})
	}
}

func (s *MyRoomUseCaseTestSuite) TestInvite() {
	s.Run("already in room", func() {
		s.gateway.EXPECT().RoomBooking(gomock.Any(), int64(5)).Return(booking.Booking{ID: 40}, nil)
		s.gateway.EXPECT().RoomGuests(gomock.Any(), int64(40)).
			Return([]readmodel.GuestRM{{Email: "friend@hotel.com"}}, nil)

		_, err := s.uc.Invite(context.Background(), s.sess, 5, "FRIEND@hotel.com")
		s.ErrorIs(err, checkin.ErrAlreadyInRoom)
	})

	s.Run("success", func() {
		s.gateway.EXPECT().RoomBooking(gomock.Any(), int64(5)).Return(booking.Booking{ID: 40}, nil)
		s.gateway.EXPECT().RoomGuests(gomock.Any(), int64(40)).Return(nil, nil)
		s.gateway.EXPECT().InviteToRoom(gomock.Any(), checkin.Invite{
			BookingID:  40,
			Email:      "friend@hotel.com",
			OwnerEmail: "guest@hotel.com",
		}).Return(nil)

		msg, err := s.uc.Invite(context.Background(), s.sess, 5, "friend@hotel.com")
		s.Require().NoError(err)
		s.Equal(usecase.MsgInvited, msg)
	})
}

func (s *MyRoomUseCaseTestSuite) TestView() {
	s.Run("not checked in", func() {
		s.gateway.EXPECT().MyRooms(gomock.Any()).Return(nil, nil)
		_, err := s.uc.View(context.Background(), s.sess)
		s.ErrorIs(err, usecase.ErrNotCheckedIn)
		s.Equal(http.StatusNotFound, notice.StatusOf(err))
	})

	s.Run("resolves booking details and window hint", func() {
		cleaningUC := usecase.NewCleaningUseCase(s.cleaning, s.kv, s.clock, config.NewTestConfig(), testutil.Logger())
		s.cleaning.EXPECT().SetCleaningTime(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).Return(nil)
		_, err := cleaningUC.Schedule(context.Background(), s.sess, 5, calendar.NewClockTime(13, 0), calendar.NewClockTime(14, 0))
		s.Require().NoError(err)

		s.gateway.EXPECT().MyRooms(gomock.Any()).Return([]room.Room{{ID: 5, Name: "Suite"}}, nil)
		s.gateway.EXPECT().RoomBooking(gomock.Any(), int64(5)).Return(booking.Booking{ID: 40}, nil)
		s.gateway.EXPECT().IsOwner(gomock.Any(), int64(40)).Return(true, nil)
		s.gateway.EXPECT().RoomGuests(gomock.Any(), int64(40)).Return([]readmodel.GuestRM{{Email: "friend@hotel.com"}}, nil)
		s.gateway.EXPECT().KeyStatus(gomock.Any(), int64(5)).Return(readmodel.KeyStatusRM{}, backend.ErrUnavailable)

		got, err := s.uc.View(context.Background(), s.sess)
		s.Require().NoError(err)
		s.Require().Len(got, 1)

		v := got[0]
		s.Equal(int64(40), v.BookingID)
		s.True(v.IsOwner)
		s.Len(v.Guests, 1)
		s.Equal("unknown", v.KeyStatus)
		s.Equal("13:00", v.CleaningFrom)
		s.Equal("14:00", v.CleaningTo)
		s.True(v.CleaningInUse)
		s.Equal("10:20", v.TimeOptions[0])
	})
}

func (s *MyRoomUseCaseTestSuite) TestUnlock_FailureMessage() {
	s.gateway.EXPECT().Unlock(gomock.Any(), int64(5)).Return(&backend.APIError{Status: http.StatusBadRequest, Message: "lock offline"})

	_, err := s.uc.Unlock(context.Background(), s.sess, 5)
	s.Require().Error(err)
	s.Equal("Failed to open the door.", err.Error())
}

func (s *MyRoomUseCaseTestSuite) TestCheckOut() {
	gomock.InOrder(
		s.gateway.EXPECT().RoomBooking(gomock.Any(), int64(5)).Return(booking.Booking{ID: 40}, nil),
		s.gateway.EXPECT().CheckOut(gomock.Any(), int64(40), "guest@hotel.com").Return(nil),
	)

	msg, err := s.uc.CheckOut(context.Background(), s.sess, 5)
	s.Require().NoError(err)
	s.Equal(usecase.MsgCheckedOut, msg)
}
