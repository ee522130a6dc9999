package models

import "time"

// Comment 资源评论表
// parent_id = 0 表示顶级评论
// 删除是软删除：is_deleted 置位，回复子树保留
type Comment struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	ResourceID uint64    `gorm:"column:resource_id;not null;index:idx_comments_resource_created" json:"resource_id"`
	UserID     uint64    `gorm:"column:user_id;not null;index:idx_comments_user" json:"user_id"`
	ParentID   uint64    `gorm:"column:parent_id;not null;default:0;index:idx_comments_parent" json:"parent_id"`
	Body       string    `gorm:"column:body;type:text;not null" json:"body"`
	IsDeleted  bool      `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	CreatedAt  time.Time `gorm:"column:created_at;index:idx_comments_resource_created" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
