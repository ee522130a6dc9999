package types

import "time"

// ResourceFileInput 创建/更新资源时的附件入参
// Order 不传时取列表下标
type ResourceFileInput struct {
	FileURL string `json:"file_url"`
	Label   string `json:"label"`
	Order   *int   `json:"order"`
}

// CreateResourceRequest 创建资源
// slug、created_by、avg_rating、rating_count 不接受客户端输入，
// 传了也不会被绑定（字段不存在于请求结构里，静默忽略）
type CreateResourceRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	ContentType string              `json:"content_type"`
	Subject     string              `json:"subject"`
	Difficulty  string              `json:"difficulty"`
	IsPublished *bool               `json:"is_published"`
	TagNames    []string            `json:"tag_names"`
	FilesInput  []ResourceFileInput `json:"files_input"`
}

// UpdateResourceRequest 部分更新
// 指针字段区分"没传"和"传了空值"：
// TagNames / FilesInput 传了（哪怕空数组）就整体替换，没传则保持不动
type UpdateResourceRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	ContentType *string              `json:"content_type"`
	Subject     *string              `json:"subject"`
	Difficulty  *string              `json:"difficulty"`
	IsPublished *bool                `json:"is_published"`
	TagNames    *[]string            `json:"tag_names"`
	FilesInput  *[]ResourceFileInput `json:"files_input"`
}

// ResourceFileItem 附件投影
type ResourceFileItem struct {
	ID        uint64    `json:"id"`
	FileURL   string    `json:"file_url"`
	Label     string    `json:"label"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// ResourceResponse 资源详情投影
// CreatedBy 对外展示用户名而不是内部ID
// AvgRating 固定两位小数的字符串，如 "3.00"
type ResourceResponse struct {
	ID          uint64             `json:"id"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	ContentType string             `json:"content_type"`
	Subject     string             `json:"subject"`
	Difficulty  string             `json:"difficulty"`
	Tags        []TagItem          `json:"tags"`
	Files       []ResourceFileItem `json:"files"`
	CreatedBy   string             `json:"created_by"`
	IsPublished bool               `json:"is_published"`
	AvgRating   string             `json:"avg_rating"`
	RatingCount uint32             `json:"rating_count"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ListResourcesResponse 资源列表
type ListResourcesResponse struct {
	Resources []*ResourceResponse `json:"resources"`
	Total     int64               `json:"total"`
}
