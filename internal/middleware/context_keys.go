package middleware

import "github.com/gin-gonic/gin"

// UserIDKey is the gin context key under which the authenticated user's id is
// stored by AuthMiddleware.
const UserIDKey = "userID"

// GetUserIDFromContext retrieves the authenticated user id set by
// AuthMiddleware. The boolean is false on unauthenticated requests.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}
