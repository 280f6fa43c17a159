package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// InternalAuthMiddleware guards routes meant for server-side callers only.
func InternalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authToken := c.GetHeader("X-Internal-Auth")

		if authToken == "" || authToken != os.Getenv("INTERNAL_AUTH_TOKEN") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Forbidden",
			})
			return
		}

		c.Next()
	}
}
