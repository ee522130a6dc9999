package types

import "time"

// CreateCommentRequest 创建评论
// ParentID = 0 表示顶级评论
type CreateCommentRequest struct {
	ResourceID uint64 `json:"resource_id"`
	ParentID   uint64 `json:"parent_id"`
	Body       string `json:"body"`
}

// CommentResponse 评论投影，作者展示用户名
// 软删除的评论保留占位，正文置空
type CommentResponse struct {
	ID         uint64    `json:"id"`
	ResourceID uint64    `json:"resource_id"`
	Username   string    `json:"user"`
	ParentID   uint64    `json:"parent_id"`
	Body       string    `json:"body"`
	IsDeleted  bool      `json:"is_deleted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CommentsListResponse 评论列表，按创建时间正序
type CommentsListResponse struct {
	Comments []*CommentResponse `json:"comments"`
	Total    int64              `json:"total"`
}
