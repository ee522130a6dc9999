package types

// TagItem 资源详情里的标签投影
type TagItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
