package types

import "time"

// RegisterRequest 创建用户
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserPublic 嵌在资料里的用户公开信息
type UserPublic struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProfileResponse 用户资料投影
type ProfileResponse struct {
	ID        uint64     `json:"id"`
	User      UserPublic `json:"user"`
	Bio       string     `json:"bio"`
	AvatarURL string     `json:"avatar_url"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// UpdateProfileRequest 只允许改 bio 和头像
type UpdateProfileRequest struct {
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}
