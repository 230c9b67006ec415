//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-portal/internal/domain/calendar"
	"hotel-portal/internal/domain/cleaning"
	"hotel-portal/internal/domain/room"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/infra"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/infra/kvstore"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"
	"hotel-portal/internal/usecase/queries"
	"hotel-portal/internal/usecase/readmodel"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const windowKeyOfRoom5 = "cleaning:window:guest@hotel.com:5"

type CleaningUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockCleaningGateway
	clock    *clock.MockClock
	kv       *kvstore.MemoryStore
	guest    session.Session
	staff    session.Session
	uc       usecase.CleaningUseCase
}

func (s *CleaningUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockCleaningGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	s.kv = kvstore.NewMemoryStore(s.clock, "test", testutil.Logger())
	s.guest = authtest.Session(s.T(), "guest@hotel.com", session.RoleGuest, s.clock.Now())
	s.staff = authtest.Session(s.T(), "cleaner@hotel.com", session.RoleCleaningStaff, s.clock.Now())
	s.uc = usecase.NewCleaningUseCase(s.gateway, s.kv, s.clock, config.NewTestConfig(), testutil.Logger())
}

func (s *CleaningUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCleaningUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CleaningUseCaseTestSuite))
}

func (s *CleaningUseCaseTestSuite) assertNoWindowHint() {
	_, err := s.kv.Get(context.Background(), windowKeyOfRoom5)
	s.True(infra.IsKind(err, infra.KindNotFound), "unexpected hint: %v", err)
}

func (s *CleaningUseCaseTestSuite) TestSchedule_RejectedWindowWritesNothing() {
	tests := []struct {
		name  string
		from  calendar.ClockTime
		to    calendar.ClockTime
		errIs error
	}{
		{name: "missing from", to: calendar.NewClockTime(12, 0), errIs: cleaning.ErrWindowMissing},
		{name: "from equals to", from: calendar.NewClockTime(12, 0), to: calendar.NewClockTime(12, 0), errIs: cleaning.ErrWindowOrder},
		{name: "shorter than twenty minutes", from: calendar.NewClockTime(12, 0), to: calendar.NewClockTime(12, 15), errIs: cleaning.ErrWindowTooShort},
		{name: "starts in the past", from: calendar.NewClockTime(9, 0), to: calendar.NewClockTime(11, 0), errIs: cleaning.ErrWindowPassed},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Schedule(context.Background(), s.guest, 5, tt.from, tt.to)
			s.Require().ErrorIs(err, tt.errIs)
			s.assertNoWindowHint()
		})
	}
}

func (s *CleaningUseCaseTestSuite) TestSchedule_Success() {
	from, to := calendar.NewClockTime(11, 0), calendar.NewClockTime(11, 40)
	s.gateway.EXPECT().SetCleaningTime(gomock.Any(), int64(5), from, to).Return(nil)

	msg, err := s.uc.Schedule(context.Background(), s.guest, 5, from, to)
	s.Require().NoError(err)
	s.Equal("Room marked as ready to clean from 11:00 to 11:40.", msg)

	b, err := s.kv.Get(context.Background(), windowKeyOfRoom5)
	s.Require().NoError(err)
	s.Contains(string(b), `"11:00"`)

	// the hint lapses at the end of the day
	s.clock.Set(time.Date(2025, 4, 3, 0, 0, 1, 0, time.UTC))
	s.assertNoWindowHint()
}

func (s *CleaningUseCaseTestSuite) TestSchedule_BackendFailureWritesNothing() {
	s.gateway.EXPECT().SetCleaningTime(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).Return(backend.ErrUnavailable)

	_, err := s.uc.Schedule(context.Background(), s.guest, 5, calendar.NewClockTime(11, 0), calendar.NewClockTime(12, 0))
	s.Require().Error(err)
	s.assertNoWindowHint()
}

func (s *CleaningUseCaseTestSuite) TestStartFinish() {
	ctx := context.Background()

	s.Run("finish before start is rejected", func() {
		_, err := s.uc.Finish(ctx, s.staff, 5)
		s.ErrorIs(err, cleaning.ErrCleaningTransition)
	})

	s.Run("start", func() {
		msg, err := s.uc.Start(ctx, s.staff, 5)
		s.Require().NoError(err)
		s.Equal(cleaning.StartedMessage, msg)
	})

	s.Run("second start is rejected", func() {
		_, err := s.uc.Start(ctx, s.staff, 5)
		s.ErrorIs(err, cleaning.ErrCleaningTransition)
	})

	s.Run("finish", func() {
		gomock.InOrder(
			s.gateway.EXPECT().MarkCleaned(gomock.Any(), int64(5)).Return(nil),
			s.gateway.EXPECT().ClearCleaningTime(gomock.Any(), int64(5)).Return(nil),
		)
		msg, err := s.uc.Finish(ctx, s.staff, 5)
		s.Require().NoError(err)
		s.Equal(cleaning.FinishedMessage, msg)

		_, err = s.kv.Get(ctx, "cleaning:progress:5")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *CleaningUseCaseTestSuite) TestFinish_WindowNotWithdrawn() {
	ctx := context.Background()
	_, err := s.uc.Start(ctx, s.staff, 5)
	s.Require().NoError(err)

	gomock.InOrder(
		s.gateway.EXPECT().MarkCleaned(gomock.Any(), int64(5)).Return(nil),
		s.gateway.EXPECT().ClearCleaningTime(gomock.Any(), int64(5)).Return(backend.ErrUnavailable),
	)
	msg, err := s.uc.Finish(ctx, s.staff, 5)
	s.Require().NoError(err)
	s.Equal(cleaning.FinishedMessage, msg)

	_, err = s.kv.Get(ctx, "cleaning:progress:5")
	s.True(infra.IsKind(err, infra.KindNotFound))

	// idle again, so a new round can start
	_, err = s.uc.Start(ctx, s.staff, 5)
	s.NoError(err)
}

func (s *CleaningUseCaseTestSuite) TestFinish_RejectedKeepsProgress() {
	ctx := context.Background()
	_, err := s.uc.Start(ctx, s.staff, 5)
	s.Require().NoError(err)

	s.gateway.EXPECT().MarkCleaned(gomock.Any(), int64(5)).Return(backend.ErrUnavailable)
	_, err = s.uc.Finish(ctx, s.staff, 5)
	s.Require().Error(err)

	_, err = s.kv.Get(ctx, "cleaning:progress:5")
	s.NoError(err)
}

func (s *CleaningUseCaseTestSuite) TestStaffView() {
	now := s.clock.Now()
	rooms := readmodel.Page[room.Room]{
		TotalElements: 3,
		Content: []room.Room{
			{ID: 1, LastCleanedAt: now.Add(-2 * time.Hour)},
			{ID: 2, CleaningTime: &room.CleaningTime{From: now.Add(-3 * time.Hour), To: now.Add(-time.Hour)}},
			{ID: 3},
		},
	}
	s.gateway.EXPECT().CleaningRooms(gomock.Any(), gomock.Any()).Return(rooms, nil).Times(2)
	s.gateway.EXPECT().Occupied(gomock.Any(), int64(1)).Return(true, nil).Times(2)
	s.gateway.EXPECT().Occupied(gomock.Any(), int64(2)).Return(false, nil).Times(2)
	s.gateway.EXPECT().Occupied(gomock.Any(), int64(3)).Return(false, errors.New("connection reset")).Times(2)
	s.gateway.EXPECT().ClearCleaningTime(gomock.Any(), int64(2)).Return(nil).Times(2)

	s.Run("all rooms", func() {
		got, err := s.uc.StaffView(context.Background(), s.staff, queries.PageRequest{}, false)
		s.Require().NoError(err)
		s.Require().Len(got.Content, 3)
		s.Equal(3, got.TotalElements)

		s.True(got.Content[0].Occupied)
		s.True(got.Content[1].Expired)
		s.Nil(got.Content[1].Room.CleaningTime)
		s.NotEmpty(got.Content[2].Err)
	})

	s.Run("only free rooms", func() {
		got, err := s.uc.StaffView(context.Background(), s.staff, queries.PageRequest{}, true)
		s.Require().NoError(err)
		s.Require().Len(got.Content, 2)
		s.Equal(2, got.TotalElements)
		s.Equal(int64(2), got.Content[0].Room.ID)
	})
}
