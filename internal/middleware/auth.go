// internal/middleware/auth.go
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/maison-aurelle/aurelle-backend/internal/account"
	"github.com/maison-aurelle/aurelle-backend/internal/utils"
)

// There are no tokens here: the engine keeps a single persisted session
// pointer, so the guards simply resolve the active session per request.

// AuthRequired rejects requests when no session is active.
func AuthRequired(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := accounts.CurrentUser()
		if !ok {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("is_admin", user.IsAdmin)
		c.Next()
	}
}

// OptionalAuth attaches the active user when present but never rejects.
func OptionalAuth(accounts *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := accounts.CurrentUser(); ok {
			c.Set("user_id", user.ID)
			c.Set("is_admin", user.IsAdmin)
		}
		c.Next()
	}
}

// AdminRequired rejects requests unless the active session belongs to an
// admin. Must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists || isAdmin != true {
			utils.ForbiddenResponse(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}
