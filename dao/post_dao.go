package dao

import (
	"snapgram/model"

	"gorm.io/gorm"
)

type PostDAO struct {
	db *gorm.DB
}

// NewPostDAO 创建一个新的 PostDAO 实例
func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{db: db}
}

// ByAuthor returns the author's posts, newest first. Querying by author_id
// means a post can never show up under a user who did not write it.
func (dao *PostDAO) ByAuthor(authorID uint64) ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// BookmarkedBy resolves the user's bookmarked posts, most recently saved first.
func (dao *PostDAO) BookmarkedBy(userID uint64) ([]model.Post, error) {
	var posts []model.Post
	err := dao.db.
		Joins("JOIN bookmarks ON bookmarks.post_id = posts.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
