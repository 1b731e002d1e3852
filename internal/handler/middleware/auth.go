package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"balancestore/internal/pkg/cookie"
	"balancestore/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokens *jwt.Service
	logger *slog.Logger
}

const ctxClaimsKey = "jwt_claims"

func NewAuthMiddleware(tokens *jwt.Service, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present but never
// rejects the request. Guest checkout depends on this.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetToken(c); token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	raw, exists := c.Get(ctxClaimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := raw.(*jwt.Claims)
	return claims, ok
}
