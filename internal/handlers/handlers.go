package handlers

import (
	"context"

	"github.com/postboard/backend/internal/auth"
	"github.com/postboard/backend/internal/metrics"
	"github.com/postboard/backend/internal/models"
	"github.com/postboard/backend/internal/repository"
)

// Handlers contains all HTTP handlers for the application
type Handlers struct {
	users repository.UserRepository
	posts repository.PostRepository
	auth  *auth.Service
	m     *metrics.Metrics
}

// NewHandlers creates a new handlers instance
func NewHandlers(users repository.UserRepository, posts repository.PostRepository, authService *auth.Service) *Handlers {
	return &Handlers{
		users: users,
		posts: posts,
		auth:  authService,
		m:     metrics.Get(),
	}
}

// serializePosts projects a post page to its wire shape, attaching reaction
// counts per post.
func (h *Handlers) serializePosts(ctx context.Context, posts []models.Post) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(posts))
	for i := range posts {
		likes, err := h.posts.ReactionCount(ctx, posts[i].ID, models.ReactionLike)
		if err != nil {
			return nil, err
		}
		dislikes, err := h.posts.ReactionCount(ctx, posts[i].ID, models.ReactionDislike)
		if err != nil {
			return nil, err
		}
		out = append(out, posts[i].Serialize(likes, dislikes))
	}
	return out, nil
}
