package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/postboard/backend/internal/models"
	"github.com/postboard/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// SessionTTL is how long an issued session stays valid.
const SessionTTL = 7 * 24 * time.Hour

// Service handles credentials and session tokens.
type Service struct {
	users  repository.UserRepository
	secret []byte
}

// NewService creates a new authentication service
func NewService(users repository.UserRepository, secret []byte) *Service {
	return &Service{users: users, secret: secret}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// The unique index is the backstop for concurrent registration
		return nil, ErrUsernameTaken
	}
	return user, nil
}

// Authenticate verifies a username/password pair.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueSession creates a signed session token for the user.
func (s *Service) IssueSession(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      now.Add(SessionTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateSession parses a session token and loads the user fresh from the
// database, so revoked or deleted accounts drop out immediately.
func (s *Service) ValidateSession(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidSession
	}

	user, err := s.users.GetUser(ctx, uint(rawID))
	if err != nil {
		return nil, ErrInvalidSession
	}
	if !user.IsActive {
		return nil, ErrInvalidSession
	}
	return user, nil
}
