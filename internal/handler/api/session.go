package api

import (
	"net/http"
	"time"

	reqdto "hotel-portal/internal/handler/dto/request"
	resdto "hotel-portal/internal/handler/dto/response"
	"hotel-portal/internal/handler/httperr"
	"hotel-portal/internal/handler/middleware"
	"hotel-portal/internal/pkg/clock"
	"hotel-portal/internal/pkg/config"
	"hotel-portal/internal/pkg/cookie"
	"hotel-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const MsgSignedUp = "Registration successful. Please log in."

type SessionHandler struct {
	sessionUseCase usecase.SessionUseCase
	clock          clock.Clock
	cookieCfg      config.CookieConfig
}

func NewSessionHandler(sessionUseCase usecase.SessionUseCase, clk clock.Clock, cfg config.Config) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		clock:          clk,
		cookieCfg:      cfg.Cookie,
	}
}

// @Summary Log in
// @Description Authenticate against the backend and store the credential cookie
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	creds, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	sess, err := h.sessionUseCase.Login(c.Request.Context(), creds)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	now := h.clock.Now()
	cookie.SetCredential(c, h.cookieCfg, sess.Token(), h.cookieMaxAge(sess.ExpiresAt(), now))
	middleware.SetSession(c, sess)
	c.JSON(http.StatusOK, resdto.FromSession(sess, now))
}

// cookieMaxAge caps the configured lifetime by the token's own expiry.
func (h *SessionHandler) cookieMaxAge(exp, now time.Time) time.Duration {
	return min(exp.Sub(now), h.cookieCfg.MaxAge)
}

// @Summary Sign up
// @Description Register a guest account
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/session/signup [post]
func (h *SessionHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	su, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}

	if err := h.sessionUseCase.SignUp(c.Request.Context(), su); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.Message(MsgSignedUp))
}

// @Summary Log out
// @Description Drop the credential cookie
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /api/session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	sess := h.sessionUseCase.Logout(c.Request.Context(), middleware.GetSession(c))
	cookie.ClearCredential(c, h.cookieCfg)
	middleware.SetSession(c, sess)
	c.JSON(http.StatusOK, resdto.FromSession(sess, h.clock.Now()))
}

// @Summary Current session
// @Description Who is calling, including whether they are checked into a room
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /api/session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	sess := middleware.GetSession(c)
	now := h.clock.Now()
	if sess.IsLoggedIn(now) {
		sess = h.sessionUseCase.WithCheckIn(c.Request.Context(), sess)
	}
	c.JSON(http.StatusOK, resdto.FromSession(sess, now))
}
