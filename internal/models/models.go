package models

import (
	"time"
)

// TimestampFormat is the display format for post timestamps,
// e.g. "Aug 29 2026, 03:04 PM".
const TimestampFormat = "Jan 02 2006, 03:04 PM"

// User represents a Postboard account.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`

	IsActive bool `gorm:"default:true" json:"is_active"`
	IsStaff  bool `gorm:"default:false" json:"is_staff"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Post represents a short text post. A post always has exactly one owner;
// it is deleted only as a cascade effect of its poster's deletion.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PosterID uint   `gorm:"not null;index" json:"poster_id"`
	Poster   User   `gorm:"foreignKey:PosterID" json:"poster,omitempty"`
	Body     string `gorm:"type:text" json:"body"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// Follow is a directed edge in the follow graph: Follower follows Following.
// The data layer does not enforce irreflexivity; handlers block self-follow.
type Follow struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	FollowerID  uint `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"follower_id"`
	Follower    User `gorm:"foreignKey:FollowerID" json:"-"`
	FollowingID uint `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"following_id"`
	Following   User `gorm:"foreignKey:FollowingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// ReactionKind is the type of a post reaction.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Reaction is a user's membership in a post's liked_by or disliked_by set.
// The like and dislike sets are independent; a user may appear in both.
type Reaction struct {
	ID     uint         `gorm:"primaryKey" json:"id"`
	PostID uint         `gorm:"not null;index;uniqueIndex:idx_reaction_unique" json:"post_id"`
	Post   Post         `gorm:"foreignKey:PostID" json:"-"`
	UserID uint         `gorm:"not null;index;uniqueIndex:idx_reaction_unique" json:"user_id"`
	User   User         `gorm:"foreignKey:UserID" json:"-"`
	Kind   ReactionKind `gorm:"type:varchar(10);not null;uniqueIndex:idx_reaction_unique" json:"kind"`

	CreatedAt time.Time `json:"created_at"`
}

// Serialize projects a post to its JSON wire shape. Reaction counts are
// queried by the caller; Poster must be preloaded.
func (p *Post) Serialize(likeCount, dislikeCount int64) map[string]any {
	return map[string]any{
		"id":            p.ID,
		"poster":        p.Poster.Username,
		"user_id":       p.PosterID,
		"body":          p.Body,
		"timestamp":     p.CreatedAt.Format(TimestampFormat),
		"like_count":    likeCount,
		"dislike_count": dislikeCount,
	}
}

// Serialize projects a user to its JSON wire shape. The followers and
// following slices must each come from a single ordered query so the id and
// username lists stay pairwise consistent.
func (u *User) Serialize(followers, following []User) map[string]any {
	followerIDs := make([]uint, len(followers))
	followerUsernames := make([]string, len(followers))
	for i, f := range followers {
		followerIDs[i] = f.ID
		followerUsernames[i] = f.Username
	}

	followingIDs := make([]uint, len(following))
	followingUsernames := make([]string, len(following))
	for i, f := range following {
		followingIDs[i] = f.ID
		followingUsernames[i] = f.Username
	}

	return map[string]any{
		"id":                  u.ID,
		"follower_ids":        followerIDs,
		"following_ids":       followingIDs,
		"follower_usernames":  followerUsernames,
		"following_usernames": followingUsernames,
	}
}
