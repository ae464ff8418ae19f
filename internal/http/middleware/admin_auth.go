// README: Admin session guard for back-office routes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionValidator is implemented by the admin service.
type SessionValidator interface {
	Validate(ctx context.Context, token string) bool
}

// AdminAuth rejects requests without a live admin session token. The token
// travels as a bearer token or the X-Admin-Token header.
func AdminAuth(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if !sessions.Validate(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set("admin_token", token)
		c.Next()
	}
}
