package handlers

import "github.com/gin-gonic/gin"

// Routes registers all application endpoints. The toggle and compose
// endpoints are registered for every method because they report their own
// method errors rather than letting the router 404.
func (h *Handlers) Routes(r *gin.Engine, sessionAuth gin.HandlerFunc) {
	// Public routes
	r.GET("/login", h.Login)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/register", h.Register)
	r.POST("/register", h.Register)

	// Authenticated routes
	protected := r.Group("/")
	protected.Use(sessionAuth)

	protected.GET("", h.Index)
	protected.Any("/new-post", h.Compose)
	protected.GET("/posts-data", h.GetPosts)
	protected.GET("/profile-data/:id", h.GetProfile)
	protected.Any("/follow-status/:id", h.ToggleFollow)
	protected.GET("/follow-usernames/:option", h.GetFollowUsernames)
	protected.Any("/like-update/:id", h.ToggleLike)
	protected.Any("/dislike-update/:id", h.ToggleDislike)
}
