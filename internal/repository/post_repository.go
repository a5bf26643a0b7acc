package repository

import (
	"context"
	"errors"

	"github.com/postboard/backend/internal/models"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

// PostRepository handles all database operations for posts and reactions.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, postID uint) (*models.Post, error)

	// Paginated post pages, newest-first. Any integer offset/batch is
	// accepted; the values only affect slicing bounds.
	ListAll(ctx context.Context, offset, batchSize int) ([]models.Post, error)
	ListByPoster(ctx context.Context, posterID uint, offset, batchSize int) ([]models.Post, error)

	// Reactions. AddReaction is an idempotent set-add: reacting twice with
	// the same kind leaves membership unchanged.
	AddReaction(ctx context.Context, postID, userID uint, kind models.ReactionKind) error
	HasReaction(ctx context.Context, postID, userID uint, kind models.ReactionKind) (bool, error)
	ReactionCount(ctx context.Context, postID uint, kind models.ReactionKind) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) CreatePost(ctx context.Context, post *models.Post) error {
	if post == nil || post.PosterID == 0 {
		return ErrInvalidInput
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Poster").First(&post, postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	return &post, err
}

func (r *postRepository) ListAll(ctx context.Context, offset, batchSize int) ([]models.Post, error) {
	var posts []models.Post
	err := r.paginate(offset, batchSize).
		WithContext(ctx).
		Preload("Poster").
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByPoster(ctx context.Context, posterID uint, offset, batchSize int) ([]models.Post, error) {
	var posts []models.Post
	err := r.paginate(offset, batchSize).
		WithContext(ctx).
		Preload("Poster").
		Where("poster_id = ?", posterID).
		Order("created_at DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

// paginate applies slicing bounds. Negative offsets clamp to the start of
// the list; a zero batch size yields an empty page.
func (r *postRepository) paginate(offset, batchSize int) *gorm.DB {
	if offset < 0 {
		offset = 0
	}
	if batchSize < 0 {
		batchSize = 0
	}
	return r.db.Offset(offset).Limit(batchSize)
}

func (r *postRepository) AddReaction(ctx context.Context, postID, userID uint, kind models.ReactionKind) error {
	exists, err := r.HasReaction(ctx, postID, userID, kind)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.db.WithContext(ctx).Create(&models.Reaction{
		PostID: postID,
		UserID: userID,
		Kind:   kind,
	}).Error
}

func (r *postRepository) HasReaction(ctx context.Context, postID, userID uint, kind models.ReactionKind) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("post_id = ? AND user_id = ? AND kind = ?", postID, userID, kind).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) ReactionCount(ctx context.Context, postID uint, kind models.ReactionKind) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Where("post_id = ? AND kind = ?", postID, kind).
		Count(&count).Error
	return count, err
}
