package model

import "time"

// Post 帖子模型
type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	Caption   string    `gorm:"type:text" json:"caption"`
	ImageURL  string    `gorm:"size:255" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"` // 关联用户
}

// Bookmark marks a post saved by a user.
type Bookmark struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_bookmark_pair" json:"user_id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_bookmark_pair" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
