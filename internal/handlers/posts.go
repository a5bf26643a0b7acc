package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/postboard/backend/internal/logger"
	"github.com/postboard/backend/internal/models"
	"github.com/postboard/backend/internal/repository"
	"github.com/postboard/backend/internal/util"
)

// Compose creates a new post and returns the first page of all posts.
// POST /new-post, JSON body {"poster": <username>, "body": <text>}.
func (h *Handlers) Compose(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		util.RespondError(c, http.StatusBadRequest, "POST request required.")
		return
	}
	if _, ok := util.CurrentUser(c); !ok {
		return
	}

	var req struct {
		Poster string `json:"poster"`
		Body   string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondError(c, http.StatusBadRequest, "Invalid JSON.")
		return
	}

	// Body validation comes before poster resolution, so an empty body wins
	// even when the poster doesn't exist.
	if strings.TrimSpace(req.Body) == "" {
		util.RespondError(c, http.StatusBadRequest, "Post body cannot be empty")
		return
	}

	ctx := c.Request.Context()
	poster, err := h.users.GetUserByUsername(ctx, req.Poster)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			util.RespondError(c, http.StatusNotFound, "User not found.")
			return
		}
		util.RespondInternalError(c, err)
		return
	}

	offset, batchSize, ok := util.Pagination(c)
	if !ok {
		return
	}

	post := &models.Post{PosterID: poster.ID, Body: req.Body}
	if err := h.posts.CreatePost(ctx, post); err != nil {
		util.RespondInternalError(c, err)
		return
	}
	h.m.PostsCreatedTotal.Inc()
	logger.Log.Info("post composed", logger.WithUserID(poster.ID), logger.WithPostID(post.ID))

	page, err := h.posts.ListAll(ctx, offset, batchSize)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}
	serialized, err := h.serializePosts(ctx, page)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, serialized)
}

// GetPosts returns a paginated post page. The filter query parameter must
// be exactly "all-posts" or "my-posts".
// GET /posts-data?filter=&offset=&batchSize=
func (h *Handlers) GetPosts(c *gin.Context) {
	user, ok := util.CurrentUser(c)
	if !ok {
		return
	}

	filter := c.Query("filter")
	if filter != "all-posts" && filter != "my-posts" {
		util.RespondError(c, http.StatusBadRequest, "Invalid filter parameter")
		return
	}

	offset, batchSize, ok := util.Pagination(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		page []models.Post
		err  error
	)
	if filter == "my-posts" {
		page, err = h.posts.ListByPoster(ctx, user.ID, offset, batchSize)
	} else {
		page, err = h.posts.ListAll(ctx, offset, batchSize)
	}
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}

	serialized, err := h.serializePosts(ctx, page)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, serialized)
}
