package models

import "time"

// Tag 标签表
// name 唯一，slug 由 name 派生同样唯一
type Tag struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(64);uniqueIndex:uk_tags_name;not null" json:"name"`
	Slug      string    `gorm:"column:slug;type:varchar(80);uniqueIndex:uk_tags_slug;not null" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// ResourceTag 资源与标签的中间表
// 联合唯一索引：确保 (resource_id, tag_id) 组合唯一
// id 递增保证读取顺序 = 写入顺序
type ResourceTag struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ResourceID uint64    `gorm:"column:resource_id;uniqueIndex:uk_resource_tag;not null" json:"resource_id"`
	TagID      uint64    `gorm:"column:tag_id;uniqueIndex:uk_resource_tag;not null;index:idx_tag_id" json:"tag_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ResourceTag) TableName() string {
	return "resource_tags"
}
