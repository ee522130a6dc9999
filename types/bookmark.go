package types

import "time"

// BookmarkResponse 收藏列表项，内嵌完整资源投影
type BookmarkResponse struct {
	ID        uint64            `json:"id"`
	Resource  *ResourceResponse `json:"resource"`
	CreatedAt time.Time         `json:"created_at"`
}

// BookmarksListResponse 用户收藏列表
type BookmarksListResponse struct {
	Bookmarks []*BookmarkResponse `json:"bookmarks"`
	Total     int64               `json:"total"`
}
