package cookie

import (
	"net/http"
	"time"

	"hotel-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const CredentialCookieName = "auth_token"

// SetCredential overwrites the session credential. maxAge is derived from the
// token expiry so the cookie never outlives the token.
func SetCredential(c *gin.Context, cfg config.CookieConfig, token string, maxAge time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		CredentialCookieName,
		token,
		int(maxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearCredential(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		CredentialCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetCredential(c *gin.Context) string {
	token, _ := c.Cookie(CredentialCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
