package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard/backend/internal/logger"
	"github.com/postboard/backend/internal/models"
	"github.com/postboard/backend/internal/repository"
	"github.com/postboard/backend/internal/util"
	"go.uber.org/zap"
)

// ToggleFollow flips the follow edge from the caller to the target user and
// returns the target's refreshed profile aggregate.
// POST /follow-status/:id?offset=&batchSize=
func (h *Handlers) ToggleFollow(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		util.RespondMethodNotAllowed(c)
		return
	}

	user, ok := util.CurrentUser(c)
	if !ok {
		return
	}

	targetID, err := util.UintParam(c, "id")
	if err != nil {
		util.RespondError(c, http.StatusNotFound, "User not found")
		return
	}

	offset, batchSize, ok := util.Pagination(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.users.GetUser(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			util.RespondError(c, http.StatusNotFound, "User not found")
			return
		}
		util.RespondInternalError(c, err)
		return
	}

	// Following yourself is a no-op, not an error.
	if targetID != user.ID {
		followed, err := h.users.HasFollow(ctx, user.ID, targetID)
		if err != nil {
			util.RespondInternalError(c, err)
			return
		}
		if followed {
			err = h.users.RemoveFollow(ctx, user.ID, targetID)
			h.m.FollowTogglesTotal.WithLabelValues("unfollow").Inc()
		} else {
			err = h.users.AddFollow(ctx, user.ID, targetID)
			h.m.FollowTogglesTotal.WithLabelValues("follow").Inc()
		}
		if err != nil {
			util.RespondInternalError(c, err)
			return
		}
		logger.Log.Info("follow toggled",
			logger.WithUserID(user.ID),
			zap.Uint("target_id", targetID),
			zap.Bool("followed_before", followed))
	}

	profile, err := h.buildProfile(ctx, user.ID, targetID, offset, batchSize)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// toggleReaction records a like or dislike on a post and returns the caller's
// refreshed profile aggregate alongside the current page of all posts.
func (h *Handlers) toggleReaction(c *gin.Context, kind models.ReactionKind) {
	if c.Request.Method != http.MethodPost {
		util.RespondMethodNotAllowed(c)
		return
	}

	user, ok := util.CurrentUser(c)
	if !ok {
		return
	}

	postID, err := util.UintParam(c, "id")
	if err != nil {
		util.RespondError(c, http.StatusNotFound, "Post not found")
		return
	}

	offset, batchSize, ok := util.Pagination(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	post, err := h.posts.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			util.RespondError(c, http.StatusNotFound, "Post not found")
			return
		}
		util.RespondInternalError(c, err)
		return
	}

	if post.PosterID == user.ID {
		util.RespondError(c, http.StatusBadRequest, "Users cannot react to their own posts.")
		return
	}

	if err := h.posts.AddReaction(ctx, postID, user.ID, kind); err != nil {
		util.RespondInternalError(c, err)
		return
	}
	h.m.ReactionsTotal.WithLabelValues(string(kind)).Inc()
	logger.Log.Info("reaction recorded",
		logger.WithUserID(user.ID),
		logger.WithPostID(postID),
		zap.String("kind", string(kind)))

	profile, err := h.buildProfile(ctx, user.ID, user.ID, offset, batchSize)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}

	page, err := h.posts.ListAll(ctx, offset, batchSize)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}
	serializedPosts, err := h.serializePosts(ctx, page)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": profile,
		"posts":   serializedPosts,
	})
}

// ToggleLike records a like on a post.
// POST /like-update/:id
func (h *Handlers) ToggleLike(c *gin.Context) {
	h.toggleReaction(c, models.ReactionLike)
}

// ToggleDislike records a dislike on a post.
// POST /dislike-update/:id
func (h *Handlers) ToggleDislike(c *gin.Context) {
	h.toggleReaction(c, models.ReactionDislike)
}
