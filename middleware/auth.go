package middleware

import (
	"net/http"

	"TaskerGo/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "session"

// AuthMiddleware gates every task route. A missing, invalid or revoked
// session redirects to the login page instead of erroring.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if utils.IsSessionRevoked(claims.ID) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Handlers read ownership from the context, never from input.
		c.Set("uid", claims.UserID)
		c.Next()
	}
}
