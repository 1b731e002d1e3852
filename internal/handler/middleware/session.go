package middleware

import (
	"balancestore/internal/pkg/config"
	"balancestore/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// SessionMiddleware assigns every visitor a session cookie on first contact.
// All cart, coupon, and checkout records are keyed by this ID, so it must run
// before any handler.
func SessionMiddleware(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := cookie.GetSessionID(c)
		if sid == "" {
			sid = uuid.NewString()
			cookie.SetSessionCookie(c, cfg, sid)
		}

		c.Set(ctxSessionIDKey, sid)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if sid, exists := c.Get(ctxSessionIDKey); exists {
		if id, ok := sid.(string); ok {
			return id
		}
	}
	return ""
}
