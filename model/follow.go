package model

import "time"

// Follow is one directed edge of the social graph: follower -> followee.
// A single row per edge keeps follow/unfollow a one-statement mutation, so
// the two sides of the relationship can never disagree.
type Follow struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	FollowerID uint64    `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FolloweeID uint64    `gorm:"not null;uniqueIndex:idx_follow_pair;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
