package middleware

import (
	"net/http"
	"strings"

	"github.com/norrapat/notihub/internal/platform/config"
	"github.com/norrapat/notihub/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates a route group behind a valid session JWT. The token is
// read from the session cookie (browser clients) or, failing that, from a
// bearer Authorization header (API clients).
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(cfg.SessionCookieName)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, cfg.JWTSecret)
		if err != nil {
			logger := GetLoggerFromCtx(c.Request.Context())
			logger.Warn("rejected session token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Next()
	}
}
