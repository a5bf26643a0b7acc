package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostSerialize(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 14, 5, 0, 0, time.UTC)
	post := &Post{
		ID:        42,
		PosterID:  7,
		Poster:    User{ID: 7, Username: "alice"},
		Body:      "hello world",
		CreatedAt: ts,
	}

	out := post.Serialize(3, 1)

	assert.Equal(t, uint(42), out["id"])
	assert.Equal(t, "alice", out["poster"])
	assert.Equal(t, uint(7), out["user_id"])
	assert.Equal(t, "hello world", out["body"])
	assert.Equal(t, "Mar 07 2025, 02:05 PM", out["timestamp"])
	assert.Equal(t, int64(3), out["like_count"])
	assert.Equal(t, int64(1), out["dislike_count"])
}

func TestPostSerializeMorningTimestamp(t *testing.T) {
	post := &Post{
		Poster:    User{Username: "bob"},
		CreatedAt: time.Date(2025, time.December, 31, 9, 30, 0, 0, time.UTC),
	}

	out := post.Serialize(0, 0)
	assert.Equal(t, "Dec 31 2025, 09:30 AM", out["timestamp"])
}

func TestUserSerialize(t *testing.T) {
	user := &User{ID: 1, Username: "alice"}
	followers := []User{{ID: 2, Username: "bob"}, {ID: 3, Username: "carol"}}
	following := []User{{ID: 3, Username: "carol"}}

	out := user.Serialize(followers, following)

	assert.Equal(t, uint(1), out["id"])
	assert.Equal(t, []uint{2, 3}, out["follower_ids"])
	assert.Equal(t, []string{"bob", "carol"}, out["follower_usernames"])
	assert.Equal(t, []uint{3}, out["following_ids"])
	assert.Equal(t, []string{"carol"}, out["following_usernames"])
}

func TestUserSerializeEmptyLists(t *testing.T) {
	user := &User{ID: 9}

	out := user.Serialize(nil, nil)

	assert.Len(t, out["follower_ids"], 0)
	assert.Len(t, out["following_ids"], 0)
	assert.Len(t, out["follower_usernames"], 0)
	assert.Len(t, out["following_usernames"], 0)
}
