package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/postboard/backend/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	users UserRepository
	posts PostRepository
	ctx   context.Context

	alice *models.User
	bob   *models.User
}

func (suite *RepositoryTestSuite) SetupSuite() {
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.Reaction{},
	))

	suite.db = db
	suite.users = NewUserRepository(db)
	suite.posts = NewPostRepository(db)
	suite.ctx = context.Background()
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM reactions")
	suite.db.Exec("DELETE FROM follows")
	suite.db.Exec("DELETE FROM posts")
	suite.db.Exec("DELETE FROM users")

	suite.alice = suite.createUser("alice")
	suite.bob = suite.createUser("bob")
}

func (suite *RepositoryTestSuite) createUser(username string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(suite.T(), suite.users.CreateUser(suite.ctx, user))
	return user
}

func (suite *RepositoryTestSuite) createPost(poster *models.User, body string) *models.Post {
	post := &models.Post{PosterID: poster.ID, Body: body}
	require.NoError(suite.T(), suite.posts.CreatePost(suite.ctx, post))
	return post
}

func (suite *RepositoryTestSuite) TestGetUserByUsername() {
	t := suite.T()

	got, err := suite.users.GetUserByUsername(suite.ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, suite.alice.ID, got.ID)

	_, err = suite.users.GetUserByUsername(suite.ctx, "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func (suite *RepositoryTestSuite) TestFollowToggleRoundTrip() {
	t := suite.T()

	has, err := suite.users.HasFollow(suite.ctx, suite.alice.ID, suite.bob.ID)
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, suite.users.AddFollow(suite.ctx, suite.alice.ID, suite.bob.ID))
	// Repeated add is a no-op
	require.NoError(t, suite.users.AddFollow(suite.ctx, suite.alice.ID, suite.bob.ID))

	has, err = suite.users.HasFollow(suite.ctx, suite.alice.ID, suite.bob.ID)
	require.NoError(t, err)
	require.True(t, has)

	count, err := suite.users.GetFollowerCount(suite.ctx, suite.bob.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// The relation is directed
	has, err = suite.users.HasFollow(suite.ctx, suite.bob.ID, suite.alice.ID)
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, suite.users.RemoveFollow(suite.ctx, suite.alice.ID, suite.bob.ID))
	has, err = suite.users.HasFollow(suite.ctx, suite.alice.ID, suite.bob.ID)
	require.NoError(t, err)
	require.False(t, has)
}

func (suite *RepositoryTestSuite) TestFollowerListsStayPairwiseOrdered() {
	t := suite.T()
	carol := suite.createUser("carol")

	require.NoError(t, suite.users.AddFollow(suite.ctx, suite.bob.ID, suite.alice.ID))
	require.NoError(t, suite.users.AddFollow(suite.ctx, carol.ID, suite.alice.ID))

	followers, err := suite.users.GetFollowers(suite.ctx, suite.alice.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	require.Equal(t, "bob", followers[0].Username)
	require.Equal(t, "carol", followers[1].Username)

	serialized := suite.alice.Serialize(followers, nil)
	ids := serialized["follower_ids"].([]uint)
	names := serialized["follower_usernames"].([]string)
	require.Len(t, ids, len(names))
	require.Equal(t, suite.bob.ID, ids[0])
	require.Equal(t, "bob", names[0])
	require.Equal(t, carol.ID, ids[1])
	require.Equal(t, "carol", names[1])
}

func (suite *RepositoryTestSuite) TestListAllNewestFirstSlicing() {
	t := suite.T()

	for i := 0; i < 5; i++ {
		post := &models.Post{
			PosterID:  suite.alice.ID,
			Body:      fmt.Sprintf("post %d", i),
			CreatedAt: time.Date(2025, time.January, 1+i, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, suite.posts.CreatePost(suite.ctx, post))
	}

	page, err := suite.posts.ListAll(suite.ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "post 4", page[0].Body)
	require.Equal(t, "post 3", page[1].Body)

	page, err = suite.posts.ListAll(suite.ctx, 3, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "post 1", page[0].Body)

	// Negative offset clamps to the start; zero batch yields an empty page
	page, err = suite.posts.ListAll(suite.ctx, -7, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "post 4", page[0].Body)

	page, err = suite.posts.ListAll(suite.ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, page, 0)

	page, err = suite.posts.ListAll(suite.ctx, 0, 100000)
	require.NoError(t, err)
	require.Len(t, page, 5)
}

func (suite *RepositoryTestSuite) TestListByPosterFiltersOwner() {
	t := suite.T()
	suite.createPost(suite.alice, "mine")
	suite.createPost(suite.bob, "theirs")

	page, err := suite.posts.ListByPoster(suite.ctx, suite.alice.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "mine", page[0].Body)
	require.Equal(t, "alice", page[0].Poster.Username)
}

func (suite *RepositoryTestSuite) TestAddReactionIsIdempotent() {
	t := suite.T()
	post := suite.createPost(suite.alice, "react to me")

	require.NoError(t, suite.posts.AddReaction(suite.ctx, post.ID, suite.bob.ID, models.ReactionLike))
	require.NoError(t, suite.posts.AddReaction(suite.ctx, post.ID, suite.bob.ID, models.ReactionLike))

	count, err := suite.posts.ReactionCount(suite.ctx, post.ID, models.ReactionLike)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	// Like and dislike sets are independent
	require.NoError(t, suite.posts.AddReaction(suite.ctx, post.ID, suite.bob.ID, models.ReactionDislike))
	dislikes, err := suite.posts.ReactionCount(suite.ctx, post.ID, models.ReactionDislike)
	require.NoError(t, err)
	require.Equal(t, int64(1), dislikes)

	likes, err := suite.posts.ReactionCount(suite.ctx, post.ID, models.ReactionLike)
	require.NoError(t, err)
	require.Equal(t, int64(1), likes)
}

func (suite *RepositoryTestSuite) TestDeleteUserCascades() {
	t := suite.T()
	carol := suite.createUser("carol")

	p1 := suite.createPost(suite.alice, "first")
	p2 := suite.createPost(suite.alice, "second")
	bobPost := suite.createPost(suite.bob, "keep me")

	require.NoError(t, suite.posts.AddReaction(suite.ctx, p1.ID, suite.bob.ID, models.ReactionLike))
	require.NoError(t, suite.posts.AddReaction(suite.ctx, bobPost.ID, suite.alice.ID, models.ReactionDislike))
	require.NoError(t, suite.users.AddFollow(suite.ctx, suite.alice.ID, suite.bob.ID))
	require.NoError(t, suite.users.AddFollow(suite.ctx, carol.ID, suite.alice.ID))

	require.NoError(t, suite.users.DeleteUser(suite.ctx, suite.alice.ID))

	_, err := suite.users.GetUser(suite.ctx, suite.alice.ID)
	require.ErrorIs(t, err, ErrUserNotFound)

	var postCount int64
	suite.db.Model(&models.Post{}).Where("poster_id = ?", suite.alice.ID).Count(&postCount)
	require.Equal(t, int64(0), postCount)

	// Reactions on alice's posts and alice's own reactions are gone
	var reactionCount int64
	suite.db.Model(&models.Reaction{}).Where("post_id IN ?", []uint{p1.ID, p2.ID}).Count(&reactionCount)
	require.Equal(t, int64(0), reactionCount)
	suite.db.Model(&models.Reaction{}).Where("user_id = ?", suite.alice.ID).Count(&reactionCount)
	require.Equal(t, int64(0), reactionCount)

	// Follow edges in both directions are gone
	var followCount int64
	suite.db.Model(&models.Follow{}).
		Where("follower_id = ? OR following_id = ?", suite.alice.ID, suite.alice.ID).
		Count(&followCount)
	require.Equal(t, int64(0), followCount)

	// Bob's post survives
	_, err = suite.posts.GetPost(suite.ctx, bobPost.ID)
	require.NoError(t, err)
}

func (suite *RepositoryTestSuite) TestDeleteUserNotFound() {
	err := suite.users.DeleteUser(suite.ctx, 999999)
	require.ErrorIs(suite.T(), err, ErrUserNotFound)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
