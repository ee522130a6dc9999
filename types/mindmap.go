package types

import "time"

// CreateMindMapRequest 创建导图
type CreateMindMapRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// UpdateMindMapRequest 部分更新导图
type UpdateMindMapRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"is_public"`
}

// MindMapResponse 导图投影，owner 展示用户名
type MindMapResponse struct {
	ID          uint64    `json:"id"`
	Owner       string    `json:"owner"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateNodeRequest 创建节点
// ParentID = 0 表示根节点，ResourceID = 0 表示不关联资源
type CreateNodeRequest struct {
	MindMapID  uint64  `json:"mindmap_id"`
	ParentID   uint64  `json:"parent_id"`
	Title      string  `json:"title"`
	Note       string  `json:"note"`
	ResourceID uint64  `json:"resource_id"`
	PositionX  float64 `json:"position_x"`
	PositionY  float64 `json:"position_y"`
}

// UpdateNodeRequest 部分更新节点
// ParentID 传了才会换父节点，换父要过同导图/非自身/无环校验
type UpdateNodeRequest struct {
	ParentID   *uint64  `json:"parent_id"`
	Title      *string  `json:"title"`
	Note       *string  `json:"note"`
	ResourceID *uint64  `json:"resource_id"`
	PositionX  *float64 `json:"position_x"`
	PositionY  *float64 `json:"position_y"`
}

// NodeResponse 节点投影
type NodeResponse struct {
	ID         uint64    `json:"id"`
	MindMapID  uint64    `json:"mindmap_id"`
	ParentID   uint64    `json:"parent_id"`
	Title      string    `json:"title"`
	Note       string    `json:"note"`
	ResourceID uint64    `json:"resource_id"`
	PositionX  float64   `json:"position_x"`
	PositionY  float64   `json:"position_y"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MindMapDetailResponse 导图详情，带全部节点
type MindMapDetailResponse struct {
	MindMap *MindMapResponse `json:"mindmap"`
	Nodes   []*NodeResponse  `json:"nodes"`
}
