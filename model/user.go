package model

import "time"

// User 用户模型
type User struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null;size:100" json:"email"`
	PasswordHash   string    `gorm:"not null;size:100" json:"-"` // 忽略JSON序列化
	Bio            string    `gorm:"type:text" json:"bio"`
	Gender         string    `gorm:"size:10" json:"gender"`
	ProfilePicture string    `gorm:"size:255" json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Populated by the service layer, not persisted on the users table.
	Followers []uint64 `gorm:"-" json:"followers"`
	Following []uint64 `gorm:"-" json:"following"`
	Posts     []Post   `gorm:"-" json:"posts"`
	Bookmarks []Post   `gorm:"-" json:"bookmarks"`
}
