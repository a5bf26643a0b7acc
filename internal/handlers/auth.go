package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard/backend/internal/auth"
	"github.com/postboard/backend/internal/logger"
	"github.com/postboard/backend/internal/util"
	"go.uber.org/zap"
)

// Index renders the application shell for an authenticated user.
// GET /
func (h *Handlers) Index(c *gin.Context) {
	user, ok := util.CurrentUser(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"username": user.Username})
}

// Login renders the login page on GET and signs the user in on POST.
// The POST body is JSON: {"username": ..., "password": ...}.
func (h *Handlers) Login(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.HTML(http.StatusOK, "login.html", gin.H{})
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondMessage(c, http.StatusBadRequest, "Invalid JSON.")
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			util.RespondMessage(c, http.StatusBadRequest, "Invalid username or password.")
			return
		}
		util.RespondInternalError(c, err)
		return
	}

	token, err := h.auth.IssueSession(user)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}
	setSessionCookie(c, token)
	h.m.SessionsIssuedTotal.Inc()

	logger.Log.Info("user logged in", logger.WithUserID(user.ID), zap.String("username", user.Username))
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

// Logout terminates the session unconditionally and redirects to root.
// GET /logout
func (h *Handlers) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// Register renders the registration form on GET and creates an account on
// POST. Unlike login this is an HTML form submission, and failures re-render
// the form with a message.
func (h *Handlers) Register(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.HTML(http.StatusOK, "register.html", gin.H{})
		return
	}

	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirmation := c.PostForm("confirmation")

	if password != confirmation {
		c.HTML(http.StatusOK, "register.html", gin.H{"message": "Passwords must match."})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), username, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			c.HTML(http.StatusOK, "register.html", gin.H{"message": "Username already taken."})
			return
		}
		util.RespondInternalError(c, err)
		return
	}

	token, err := h.auth.IssueSession(user)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}
	setSessionCookie(c, token)
	h.m.SessionsIssuedTotal.Inc()

	logger.Log.Info("user registered", logger.WithUserID(user.ID), zap.String("username", user.Username))
	c.Redirect(http.StatusFound, "/")
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(auth.SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
}
