package model

import (
	"time"

	"gorm.io/gorm"
)

// 角色
const (
	RoleUser            = "USER"
	RoleServiceProvider = "SERVICE_PROVIDER"
)

// User 用户表 — 对应 users
// 账号由外部身份系统维护，本服务只读取姓名用于展示
type User struct {
	UserID    string    `gorm:"type:uuid;primaryKey"                   json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null"             json:"name"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Role      string    `gorm:"type:varchar(20);not null"              json:"role"` // USER | SERVICE_PROVIDER
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"     json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"     json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// BeforeCreate 生成主键
func (u *User) BeforeCreate(_ *gorm.DB) error {
	newID(&u.UserID)
	return nil
}
