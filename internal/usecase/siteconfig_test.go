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

type SiteConfigUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	gateway  *usecasemock.MockSiteConfigGateway
	modules  *usecasemock.MockModuleGateway
	clock    *clock.MockClock
	kv       *kvstore.MemoryStore
	admin    session.Session
	uc       usecase.SiteConfigUseCase
}

func (s *SiteConfigUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = usecasemock.NewMockSiteConfigGateway(s.mockCtrl)
	s.modules = usecasemock.NewMockModuleGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	s.kv = kvstore.NewMemoryStore(s.clock, "test", testutil.Logger())
	s.admin = authtest.Session(s.T(), "desk@hotel.com", session.RoleAdmin, s.clock.Now())
	s.uc = usecase.NewSiteConfigUseCase(s.gateway, s.kv, testutil.Logger())
}

func (s *SiteConfigUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSiteConfigUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SiteConfigUseCaseTestSuite))
}

func validSiteConfig() uiconfig.Config {
	return uiconfig.Config{
		ID:               1,
		HotelName:        "Hotel Alpenblick",
		DescriptionShort: "Family run since 1952",
		Description:      "Quiet rooms above the valley.",
		Address:          "Dorfstrasse 4, 6020 Innsbruck, Austria",
	}
}

func (s *SiteConfigUseCaseTestSuite) TestUpdate_Validation() {
	tests := []struct {
		name   string
		mutate func(*uiconfig.Config)
		errIs  error
	}{
		{name: "short hotel name", mutate: func(c *uiconfig.Config) { c.HotelName = " Al " }, errIs: uiconfig.ErrHotelName},
		{name: "foreign address", mutate: func(c *uiconfig.Config) { c.Address = "Main Street 1, Berlin" }, errIs: uiconfig.ErrAddressCountry},
		{name: "negative half board", mutate: func(c *uiconfig.Config) { c.Modules.PriceHalfBoard = -1 }, errIs: uiconfig.ErrHalfBoardPrice},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			in := validSiteConfig()
			tt.mutate(&in)
			_, _, err := s.uc.Update(context.Background(), s.admin, in, nil)
			s.ErrorIs(err, tt.errIs)
		})
	}
}

func (s *SiteConfigUseCaseTestSuite) TestUpdate_DropsCachedFlags() {
	ctx := context.Background()
	guard := usecase.NewGuardUseCase(s.modules, s.kv, s.clock, config.NewTestConfig(), testutil.Logger())
	cleaner := authtest.Session(s.T(), "clean@hotel.com", session.RoleCleaningStaff, s.clock.Now())

	s.modules.EXPECT().ModuleEnabled(gomock.Any(), uiconfig.ModuleRoomCleaning).Return(true, nil)
	s.True(guard.Decide(ctx, "/room-cleaning", cleaner).Allowed)

	s.gateway.EXPECT().UpdateUIConfig(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg uiconfig.Config, images []backend.File) (uiconfig.Config, error) {
			s.Empty(images)
			return cfg, nil
		})
	_, msg, err := s.uc.Update(ctx, s.admin, validSiteConfig(), nil)
	s.Require().NoError(err)
	s.Equal(uiconfig.SavedMessage, msg)

	s.modules.EXPECT().ModuleEnabled(gomock.Any(), uiconfig.ModuleRoomCleaning).Return(false, nil)
	s.Equal(access.ReasonModuleDisabled, guard.Decide(ctx, "/room-cleaning", cleaner).Reason)
}

func (s *SiteConfigUseCaseTestSuite) TestHomepage_Fallback() {
	s.gateway.EXPECT().Homepage(gomock.Any()).Return(uiconfig.Homepage{}, backend.ErrUnavailable)

	_, err := s.uc.Homepage(context.Background())
	s.Require().Error(err)
	s.Equal("Error loading homepage", err.Error())
}
