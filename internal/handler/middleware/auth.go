package middleware

import (
	"net/http"

	"hotel-portal/internal/domain/access"
	"hotel-portal/internal/domain/session"
	"hotel-portal/internal/handler/httperr"
	"hotel-portal/internal/pkg/cookie"
	"hotel-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

type AuthMiddleware struct {
	sessions usecase.SessionUseCase
	guard    usecase.GuardUseCase
}

func NewAuthMiddleware(sessions usecase.SessionUseCase, guard usecase.GuardUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		guard:    guard,
	}
}

// LoadSession rebuilds the session from the credential cookie on every
// request. It never aborts; an unreadable cookie yields an anonymous session.
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxSessionKey, m.sessions.Current(cookie.GetCredential(c)))
		c.Next()
	}
}

// Require runs the route guard for req. A missing login answers 401, every
// other denial 403; both carry the redirect target.
func (m *AuthMiddleware) Require(req access.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		d := m.guard.Check(c.Request.Context(), req, GetSession(c))
		if d.Allowed {
			c.Next()
			return
		}
		status := http.StatusForbidden
		if d.Reason == access.ReasonLogin {
			status = http.StatusUnauthorized
		}
		httperr.AbortDenied(c, status, d)
	}
}

// GetSession returns the session LoadSession stored, or an anonymous one.
func GetSession(c *gin.Context) session.Session {
	if sess, ok := lookupSession(c); ok {
		return sess
	}
	return session.Anonymous()
}

// SetSession replaces the request's session after login or logout.
func SetSession(c *gin.Context, sess session.Session) {
	c.Set(ctxSessionKey, sess)
}

func lookupSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}
