package models

import "time"

// Users 用户表
// 认证由上游网关负责，这里只保存身份信息
type Users struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(100);uniqueIndex:uk_users_username;not null" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;default:''" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// Profile 用户资料，与用户 1:1
// 用户创建成功后必须存在，见 UserService.ensureProfile
type Profile struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    uint64    `gorm:"column:user_id;uniqueIndex:uk_profiles_user;not null" json:"user_id"`
	Bio       string    `gorm:"column:bio;type:text" json:"bio"`
	AvatarURL string    `gorm:"column:avatar_url;type:varchar(255);default:''" json:"avatar_url"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
