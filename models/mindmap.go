package models

import "time"

// MindMap 思维导图
type MindMap struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	OwnerID     uint64    `gorm:"column:owner_id;not null;index:idx_mindmaps_owner_created" json:"owner_id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsPublic    bool      `gorm:"column:is_public;not null;default:false" json:"is_public"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_mindmaps_owner_created" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (MindMap) TableName() string {
	return "mindmaps"
}

// MindMapNode 导图节点
// parent_id = 0 表示根节点
// resource_id 可选关联资源，资源删除时置 0，节点保留
// 删除导图或父节点时整棵子树一并删除，在事务里显式执行
type MindMapNode struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	MindMapID  uint64    `gorm:"column:mindmap_id;not null;index:idx_mindmap_nodes_map" json:"mindmap_id"`
	ParentID   uint64    `gorm:"column:parent_id;not null;default:0;index:idx_mindmap_nodes_parent" json:"parent_id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Note       string    `gorm:"column:note;type:text" json:"note"`
	ResourceID uint64    `gorm:"column:resource_id;not null;default:0;index:idx_mindmap_nodes_resource" json:"resource_id"`
	PositionX  float64   `gorm:"column:position_x;not null;default:0" json:"position_x"`
	PositionY  float64   `gorm:"column:position_y;not null;default:0" json:"position_y"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (MindMapNode) TableName() string {
	return "mindmap_nodes"
}
