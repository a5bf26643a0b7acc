package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/postboard/backend/internal/models"
	"github.com/postboard/backend/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, repository.UserRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:auth_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Follow{}, &models.Reaction{}))

	users := repository.NewUserRepository(db)
	return NewService(users, []byte("test-secret")), users
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@test.com", "s3cret-pw")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "s3cret-pw", user.PasswordHash)

	got, err := svc.Authenticate(ctx, "alice", "s3cret-pw")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "s3cret-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@test.com", "pw-one")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@test.com", "pw-two")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSessionRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@test.com", "s3cret-pw")
	require.NoError(t, err)

	token, err := svc.IssueSession(user)
	require.NoError(t, err)

	got, err := svc.ValidateSession(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, "alice", got.Username)
}

func TestValidateSessionRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ValidateSession(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestValidateSessionRejectsDeletedUser(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@test.com", "s3cret-pw")
	require.NoError(t, err)

	token, err := svc.IssueSession(user)
	require.NoError(t, err)

	require.NoError(t, users.DeleteUser(ctx, user.ID))

	_, err = svc.ValidateSession(ctx, token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestValidateSessionRejectsExpiredToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@test.com", "s3cret-pw")
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(-time.Hour).Unix(),
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateSession(ctx, expired)
	require.ErrorIs(t, err, ErrInvalidSession)
}
