//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/access"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/domain/uiconfig"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/testutil/authtest"
	"hotel-portal/internal/testutil/httptest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	sessions *usecasemock.MockSessionUseCase
	guard    *usecasemock.MockGuardUseCase
}

var cleanerRoute = access.Requirement{CleanerOnly: true, Module: uiconfig.ModuleRoomCleaning}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.sessions = usecasemock.NewMockSessionUseCase(s.mockCtrl)
	s.guard = usecasemock.NewMockGuardUseCase(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.sessions, s.guard)

	s.router.Use(m.LoadSession())
	s.router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetSession(c).Email())
	})
	s.router.GET("/room-cleaning", m.Require(cleanerRoute), func(c *gin.Context) {
		c.String(http.StatusOK, "board")
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestLoadSession() {
	sess := authtest.Session(s.T(), "anna@hotel.com", session.RoleGuest, time.Now())

	s.Run("cookie becomes the session", func() {
		s.sessions.EXPECT().Current(sess.Token()).Return(sess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, sess.Token())
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("anna@hotel.com", rec.Body.String())
	})

	s.Run("no cookie is anonymous, never an error", func() {
		s.sessions.EXPECT().Current("").Return(session.Anonymous())

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/whoami", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Body.String())
	})
}

func (s *AuthMiddlewareTestSuite) TestRequire() {
	cleaner := authtest.Session(s.T(), "clean@hotel.com", session.RoleCleaningStaff, time.Now())

	tests := []struct {
		name       string
		decision   access.Decision
		wantStatus int
		wantTo     string
	}{
		{name: "allowed", decision: access.Allow(), wantStatus: http.StatusOK},
		{name: "login missing", decision: access.Decision{RedirectTo: "/login", Reason: access.ReasonLogin}, wantStatus: http.StatusUnauthorized, wantTo: "/login"},
		{name: "module disabled", decision: access.Decision{RedirectTo: "/", Reason: access.ReasonModuleDisabled}, wantStatus: http.StatusForbidden, wantTo: "/"},
		{name: "wrong role", decision: access.Decision{RedirectTo: "/", Reason: access.ReasonCleanerOnly}, wantStatus: http.StatusForbidden, wantTo: "/"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.sessions.EXPECT().Current(cleaner.Token()).Return(cleaner)
			s.guard.EXPECT().Check(gomock.Any(), cleanerRoute, cleaner).Return(tt.decision)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-cleaning", nil, cleaner.Token())
			if tt.decision.Allowed {
				s.Equal(http.StatusOK, rec.Code)
				s.Equal("board", rec.Body.String())
				return
			}
			httptest.AssertDenied(s.T(), rec, tt.wantStatus, tt.wantTo, tt.decision.Reason)
			s.NotContains(rec.Body.String(), "board")
		})
	}
}
