package middleware

import (
	"github.com/gin-gonic/gin"
)

// RequireActor rejects requests that reached a protected route without an
// authenticated user, e.g. when AuthMiddleware was not mounted.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserID) == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}
		c.Next()
	}
}
