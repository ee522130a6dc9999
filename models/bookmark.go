package models

import "time"

// Bookmark 收藏记录
// 唯一键: resource_id + user_id
type Bookmark struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	ResourceID uint64    `gorm:"column:resource_id;not null;uniqueIndex:uk_bookmark_resource_user,priority:1" json:"resource_id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_bookmark_resource_user,priority:2;index:idx_bookmarks_user" json:"user_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
