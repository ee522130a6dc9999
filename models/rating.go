package models

import "time"

// Rating 评分记录
// 唯一键: resource_id + user_id，一个用户对一个资源只有一条评分
// score 取值 [1,5]，由 service 层校验
type Rating struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	ResourceID uint64    `gorm:"column:resource_id;not null;uniqueIndex:uk_resource_user,priority:1" json:"resource_id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_resource_user,priority:2" json:"user_id"`
	Score      int       `gorm:"column:score;not null" json:"score"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}
