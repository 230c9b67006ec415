//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"hotel-portal/internal/domain/access"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/infra/backend"
	"hotel-portal/internal/infra/kvstore"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"
	"hotel-portal/internal/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuardUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockModuleGateway
	clock    *clock.MockClock
	cfg      config.Config
}

func (s *GuardUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockModuleGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig()
}

func (s *GuardUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuardUseCaseSuite(t *testing.T) {
	suite.Run(t, new(GuardUseCaseTestSuite))
}

func (s *GuardUseCaseTestSuite) guard() usecase.GuardUseCase {
	kv := kvstore.NewMemoryStore(s.clock, "test", testutil.Logger())
	return usecase.NewGuardUseCase(s.gateway, kv, s.clock, s.cfg, testutil.Logger())
}

func (s *GuardUseCaseTestSuite) as(role session.Role) session.Session {
	return authtest.Session(s.T(), "someone@hotel.com", role, s.clock.Now())
}

func (s *GuardUseCaseTestSuite) TestDecide_WithoutModuleLookup() {
	g := s.guard()
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		sess session.Session
		want access.Decision
	}{
		{name: "public page", path: "/rooms/detail/3", sess: session.Anonymous(), want: access.Allow()},
		{name: "anonymous on protected page", path: "/room-cleaning", sess: session.Anonymous(), want: access.Decision{RedirectTo: "/login", Reason: access.ReasonLogin}},
		{name: "unknown page needs login", path: "/my-bookings", sess: session.Anonymous(), want: access.Decision{RedirectTo: "/login", Reason: access.ReasonLogin}},
		{name: "guest on admin page", path: "/ui-config", sess: s.as(session.RoleGuest), want: access.Decision{RedirectTo: "/", Reason: access.ReasonAdminOnly}},
		{name: "receptionist on admin page", path: "/rooms/create", sess: s.as(session.RoleReceptionist), want: access.Decision{RedirectTo: "/", Reason: access.ReasonAdminOnly}},
		{name: "admin on admin page", path: "/rooms/edit/4", sess: s.as(session.RoleAdmin), want: access.Allow()},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, g.Decide(ctx, tt.path, tt.sess))
		})
	}
}

func (s *GuardUseCaseTestSuite) TestDecide_ModuleFlags() {
	ctx := context.Background()

	s.Run("disabled module denies before role check", func() {
		s.gateway.EXPECT().ModuleEnabled(gomock.Any(), uiconfig.ModuleRoomCleaning).Return(false, nil)
		got := s.guard().Decide(ctx, "/room-cleaning", s.as(session.RoleGuest))
		s.Equal(access.Decision{RedirectTo: "/", Reason: access.ReasonModuleDisabled}, got)
	})

	s.Run("enabled module falls through to role", func() {
		s.gateway.EXPECT().ModuleEnabled(gomock.Any(), uiconfig.ModuleRoomCleaning).Return(true, nil)
		got := s.guard().Decide(ctx, "/room-cleaning", s.as(session.RoleGuest))
		s.Equal(access.Decision{RedirectTo: "/", Reason: access.ReasonCleanerOnly}, got)
	})

	s.Run("fetch failure allows", func() {
		s.gateway.EXPECT().ModuleEnabled(gomock.Any(), uiconfig.ModuleDigitalCheckIn).Return(false, backend.ErrUnavailable)
		got := s.guard().Decide(ctx, "/check-in/12", s.as(session.RoleGuest))
		s.True(got.Allowed)
	})

	s.Run("legacy mode never asks", func() {
		s.cfg.Guard.ModuleFlags = config.ModuleFlagsLegacy
		defer func() { s.cfg.Guard.ModuleFlags = config.ModuleFlagsEnforce }()

		got := s.guard().Decide(ctx, "/room-cleaning", s.as(session.RoleCleaningStaff))
		s.True(got.Allowed)
	})
}

func (s *GuardUseCaseTestSuite) TestDecide_CachesFlags() {
	ctx := context.Background()
	g := s.guard()
	cleaner := s.as(session.RoleCleaningStaff)

	s.gateway.EXPECT().ModuleEnabled(gomock.Any(), uiconfig.ModuleRoomCleaning).Return(true, nil).Times(1)
	s.True(g.Decide(ctx, "/room-cleaning", cleaner).Allowed)
	s.True(g.Decide(ctx, "/room-cleaning", cleaner).Allowed)

	s.clock.Add(s.cfg.Guard.FlagTTL)
	s.gateway.EXPECT().ModuleEnabled(gomock.Any(), uiconfig.ModuleRoomCleaning).Return(false, nil).Times(1)
	s.Equal(access.ReasonModuleDisabled, g.Decide(ctx, "/room-cleaning", cleaner).Reason)
}

func (s *GuardUseCaseTestSuite) TestModules() {
	for _, m := range uiconfig.All {
		s.gateway.EXPECT().ModuleEnabled(gomock.Any(), m).Return(m != uiconfig.ModuleNuki, nil)
	}

	got := s.guard().Modules(context.Background())
	s.Len(got, len(uiconfig.All))
	s.False(got[uiconfig.ModuleNuki])
	s.True(got[uiconfig.ModuleActivities])
}
