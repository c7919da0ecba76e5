package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Manav2209/s30-assignment-4/internal/model"
)

// UserRepository 用户数据访问接口
// 账号由外部身份系统维护，此处只负责写入（同步与测试数据）
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}
