package dao

import (
	"snapgram/model"

	"gorm.io/gorm"
)

type FollowDAO struct {
	db *gorm.DB
}

// NewFollowDAO 创建一个新的 FollowDAO 实例
func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{db: db}
}

// IsFollowing reports whether the follower -> followee edge exists.
func (dao *FollowDAO) IsFollowing(followerID, followeeID uint64) (bool, error) {
	var count int64
	err := dao.db.Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// Follow inserts the edge. The unique (follower_id, followee_id) index makes
// a concurrent duplicate insert fail instead of doubling the edge.
func (dao *FollowDAO) Follow(followerID, followeeID uint64) error {
	return dao.db.Create(&model.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error
}

// Unfollow deletes the edge. Deleting a missing edge is a no-op.
func (dao *FollowDAO) Unfollow(followerID, followeeID uint64) error {
	return dao.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{}).Error
}

// FollowerIDs 返回关注该用户的用户 ID 列表
func (dao *FollowDAO) FollowerIDs(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := dao.db.Model(&model.Follow{}).
		Where("followee_id = ?", userID).
		Order("created_at ASC").
		Pluck("follower_id", &ids).Error
	return ids, err
}

// FollowingIDs 返回该用户关注的用户 ID 列表
func (dao *FollowDAO) FollowingIDs(userID uint64) ([]uint64, error) {
	var ids []uint64
	err := dao.db.Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Order("created_at ASC").
		Pluck("followee_id", &ids).Error
	return ids, err
}
