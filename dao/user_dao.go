package dao

import (
	"snapgram/model"

	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

// NewUserDAO 创建一个新的 UserDAO 实例
func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser 创建新用户
func (dao *UserDAO) CreateUser(user *model.User) error {
	return dao.db.Create(user).Error
}

// FindByEmail 根据邮箱查询用户
func (dao *UserDAO) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := dao.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID 根据 ID 获取用户
func (dao *UserDAO) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := dao.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs 批量查询用户
func (dao *UserDAO) FindByIDs(ids []uint64) ([]model.User, error) {
	var users []model.User
	err := dao.db.Where("id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListExcept returns every user except the given one, newest first.
func (dao *UserDAO) ListExcept(id uint64) ([]model.User, error) {
	var users []model.User
	err := dao.db.Where("id <> ?", id).Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateFields applies a partial update to the user row.
func (dao *UserDAO) UpdateFields(id uint64, fields map[string]interface{}) error {
	return dao.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}
