//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-portal/internal/domain/auth"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/handler/api"
	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/pkg/cookie"
	"hotel-portal/internal/testutil"
	"hotel-portal/internal/testutil/authtest"
	"hotel-portal/internal/testutil/httptest"
	usecasemock "hotel-portal/internal/testutil/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockUC   *usecasemock.MockSessionUseCase
	clock    *clock.MockClock
	current  session.Session
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUC = usecasemock.NewMockSessionUseCase(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC))
	s.current = session.Anonymous()
	h := api.NewSessionHandler(s.mockUC, s.clock, config.NewTestConfig())

	// stands in for LoadSession
	s.router.Use(func(c *gin.Context) {
		middleware.SetSession(c, s.current)
		c.Next()
	})
	s.router.POST("/api/session/login", h.Login)
	s.router.POST("/api/session/signup", h.SignUp)
	s.router.POST("/api/session/logout", h.Logout)
	s.router.GET("/api/session", h.Current)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

type testCaseSession struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *SessionHandlerTestSuite) TestLogin() {
	url := "/api/session/login"
	reqBody := map[string]any{"email": "anna@hotel.com", "password": "secret"}

	s.Run("success: sets the credential cookie", func() {
		sess := authtest.Session(s.T(), "anna@hotel.com", session.RoleGuest, s.clock.Now())
		s.mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, creds auth.Credentials) (session.Session, error) {
				s.Equal("anna@hotel.com", creds.Email().Value())
				return sess, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		want := resdto.SessionResponse{LoggedIn: true, Email: "anna@hotel.com", Role: "GUEST"}
		if diff := cmp.Diff(want, res, cmpopts.IgnoreFields(resdto.SessionResponse{}, "ExpiresAt")); diff != "" {
			s.Failf("session mismatch", "(-want +got):\n%s", diff)
		}

		c := httptest.ExtractCookie(rec, cookie.CredentialCookieName)
		s.Require().NotNil(c)
		s.Equal(sess.Token(), c.Value)
		s.Equal(3600, c.MaxAge, "cookie must not outlive the token")
		s.True(c.HttpOnly)
	})

	s.Run("error: validation happens before the backend is asked", func() {
		cases := []testCaseSession{
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusUnprocessableEntity, expectInBody: auth.ErrMissingCredentials.Error()},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusUnprocessableEntity, expectInBody: auth.ErrMissingCredentials.Error()},
			{name: "malformed email", mutate: testutil.Field("email", "anna"), expectCode: http.StatusUnprocessableEntity},
			{name: "wrong type", mutate: testutil.Field("email", 42), expectCode: http.StatusBadRequest, expectInBody: "Invalid request"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
				s.Nil(httptest.ExtractCookie(rec, cookie.CredentialCookieName))
			})
		}
	})

	s.Run("error: rejected credentials leave no cookie", func() {
		s.mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).Return(session.Anonymous(), auth.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid email or password.")
		s.Nil(httptest.ExtractCookie(rec, cookie.CredentialCookieName))
	})
}

func (s *SessionHandlerTestSuite) TestSignUp() {
	url := "/api/session/signup"

	s.Run("success", func() {
		s.mockUC.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"email": "new@hotel.com", "password": "secret12"}, "")

		var res resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(api.MsgSignedUp, res.Message)
	})

	s.Run("error: password shorter than eight characters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"email": "new@hotel.com", "password": "secret1"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Password must be at least 8 characters long.")
	})
}

func (s *SessionHandlerTestSuite) TestLogout() {
	s.current = authtest.Session(s.T(), "anna@hotel.com", session.RoleGuest, s.clock.Now())
	s.mockUC.EXPECT().Logout(gomock.Any(), s.current).Return(session.Anonymous())

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/logout", nil, s.current.Token())

	var res resdto.SessionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.False(res.LoggedIn)

	c := httptest.ExtractCookie(rec, cookie.CredentialCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *SessionHandlerTestSuite) TestCurrent() {
	s.Run("anonymous skips the check-in lookup", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/session", nil, "")

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(resdto.SessionResponse{Role: "UNDEFINED"}, res)
	})

	s.Run("logged in reports check-in state", func() {
		s.current = authtest.Session(s.T(), "anna@hotel.com", session.RoleAdmin, s.clock.Now())
		s.mockUC.EXPECT().WithCheckIn(gomock.Any(), s.current).Return(s.current.WithCheckedIn(true))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/session", nil, s.current.Token())

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.CheckedIn)
		s.Equal("ADMIN", res.Role)
		s.Require().NotNil(res.ExpiresAt)
		s.True(res.ExpiresAt.Equal(s.clock.Now().Add(time.Hour)))
	})
}
