package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard/backend/internal/auth"
	"github.com/postboard/backend/internal/logger"
	"github.com/postboard/backend/internal/util"
	"go.uber.org/zap"
)

// SessionAuth validates the session cookie and sets the authenticated user
// on the request context. Unauthenticated callers are redirected to the
// login page.
func SessionAuth(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, util.LoginPath)
			c.Abort()
			return
		}

		user, err := service.ValidateSession(c.Request.Context(), token)
		if err != nil {
			logger.Log.Debug("session rejected", zap.Error(err))
			c.Redirect(http.StatusFound, util.LoginPath)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}
