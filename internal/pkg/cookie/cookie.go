package cookie

import (
	"net/http"
	"time"

	"balancestore/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "sid"
	TokenCookieName   = "access_token"
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		sessionID,
		0, // session cookie, expires with the browser session
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func GetSessionID(c *gin.Context) string {
	sid, _ := c.Cookie(SessionCookieName)
	return sid
}

func SetTokenCookie(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		TokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		TokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetToken(c *gin.Context) string {
	token, _ := c.Cookie(TokenCookieName)
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
