package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard/backend/internal/models"
)

// LoginPath is where unauthenticated callers are redirected.
const LoginPath = "/login"

// CurrentUser extracts the authenticated user from the Gin context.
// If no user is present it redirects to the login page and returns ok=false;
// the session middleware normally guarantees one on protected routes.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return nil, false
	}
	user, ok := value.(*models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user data in context"})
		c.Abort()
		return nil, false
	}
	return user, true
}
