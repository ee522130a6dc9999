package types

import "time"

// RateRequest 窄评分入口 POST /resources/:id/rate
// 完整评分写入和这里共用同一处 score 校验，换入口绕不过边界检查
type RateRequest struct {
	Score int `json:"score"`
}

// RatingResponse 评分投影
type RatingResponse struct {
	ID         uint64    `json:"id"`
	ResourceID uint64    `json:"resource_id"`
	Username   string    `json:"user"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
