package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/postboard/backend/internal/logger"
	"github.com/postboard/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	_ = gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// SeedDev fills the development database with realistic users, posts,
// follows and reactions. All seeded accounts share the password "password".
func (s *Seeder) SeedDev() error {
	logger.Log.Info("Creating users...")
	users, err := s.seedUsers(20)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	logger.Log.Info("Creating posts...")
	posts, err := s.seedPosts(users, 120)
	if err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}

	logger.Log.Info("Creating follows...")
	if err := s.seedFollows(users); err != nil {
		return fmt.Errorf("failed to seed follows: %w", err)
	}

	logger.Log.Info("Creating reactions...")
	if err := s.seedReactions(users, posts); err != nil {
		return fmt.Errorf("failed to seed reactions: %w", err)
	}

	logger.Log.Info("Seeding complete",
		zap.Int("users", len(users)),
		zap.Int("posts", len(posts)))
	return nil
}

func (s *Seeder) seedUsers(count int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i)
		user := models.User{
			Username:     username,
			Email:        fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
			PasswordHash: string(hash),
			IsActive:     true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedPosts(users []models.User, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		poster := users[rand.Intn(len(users))]
		post := models.Post{
			PosterID:  poster.ID,
			Body:      gofakeit.Sentence(4 + rand.Intn(16)),
			CreatedAt: time.Now().UTC().Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
		}
		if err := s.db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// seedFollows gives every user a handful of random follow targets.
func (s *Seeder) seedFollows(users []models.User) error {
	for _, user := range users {
		targets := rand.Intn(6)
		for j := 0; j < targets; j++ {
			other := users[rand.Intn(len(users))]
			if other.ID == user.ID {
				continue
			}
			follow := models.Follow{FollowerID: user.ID, FollowingID: other.ID}
			if err := s.db.Where(&follow).FirstOrCreate(&follow).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedReactions(users []models.User, posts []models.Post) error {
	kinds := []models.ReactionKind{models.ReactionLike, models.ReactionDislike}
	for _, post := range posts {
		reactors := rand.Intn(5)
		for j := 0; j < reactors; j++ {
			user := users[rand.Intn(len(users))]
			if user.ID == post.PosterID {
				continue
			}
			reaction := models.Reaction{
				PostID: post.ID,
				UserID: user.ID,
				Kind:   kinds[rand.Intn(len(kinds))],
			}
			if err := s.db.Where(&reaction).FirstOrCreate(&reaction).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
