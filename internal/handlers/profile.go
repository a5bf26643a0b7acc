package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postboard/backend/internal/repository"
	"github.com/postboard/backend/internal/util"
)

// buildProfile assembles the composite profile aggregate for a target user:
// identity, follow counts, a page of their own posts, the viewer's id, and
// the follower/following id and username lists.
func (h *Handlers) buildProfile(ctx context.Context, viewerID, targetID uint, offset, batchSize int) (gin.H, error) {
	target, err := h.users.GetUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	followers, err := h.users.GetFollowers(ctx, targetID)
	if err != nil {
		return nil, err
	}
	following, err := h.users.GetFollowing(ctx, targetID)
	if err != nil {
		return nil, err
	}
	serialized := target.Serialize(followers, following)

	followerCount, err := h.users.GetFollowerCount(ctx, targetID)
	if err != nil {
		return nil, err
	}
	followingCount, err := h.users.GetFollowingCount(ctx, targetID)
	if err != nil {
		return nil, err
	}

	page, err := h.posts.ListByPoster(ctx, targetID, offset, batchSize)
	if err != nil {
		return nil, err
	}
	serializedPosts, err := h.serializePosts(ctx, page)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"user_id":             target.ID,
		"username":            target.Username,
		"follower_count":      followerCount,
		"following_count":     followingCount,
		"posts":               serializedPosts,
		"viewer_id":           viewerID,
		"follower_ids":        serialized["follower_ids"],
		"following_ids":       serialized["following_ids"],
		"follower_usernames":  serialized["follower_usernames"],
		"following_usernames": serialized["following_usernames"],
	}, nil
}

// GetProfile returns the full profile aggregate for a user.
// GET /profile-data/:id?offset=&batchSize=
func (h *Handlers) GetProfile(c *gin.Context) {
	viewer, ok := util.CurrentUser(c)
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

	profile, err := h.buildProfile(c.Request.Context(), viewer.ID, targetID, offset, batchSize)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			util.RespondError(c, http.StatusNotFound, "User not found")
			return
		}
		util.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetFollowUsernames returns the caller's follower or following lists,
// depending on the path option.
// GET /follow-usernames/:option
func (h *Handlers) GetFollowUsernames(c *gin.Context) {
	user, ok := util.CurrentUser(c)
	if !ok {
		return
	}

	offset, batchSize, ok := util.Pagination(c)
	if !ok {
		return
	}

	profile, err := h.buildProfile(c.Request.Context(), user.ID, user.ID, offset, batchSize)
	if err != nil {
		util.RespondInternalError(c, err)
		return
	}

	option := c.Param("option")
	var usernames, ids any
	if option == "following" {
		usernames = profile["following_usernames"]
		ids = profile["following_ids"]
	} else {
		usernames = profile["follower_usernames"]
		ids = profile["follower_ids"]
	}

	c.JSON(http.StatusOK, gin.H{
		"usernames": usernames,
		"ids":       ids,
		"option":    option,
	})
}
