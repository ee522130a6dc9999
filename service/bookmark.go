package service

import (
	"Mindshare/dao"
	"Mindshare/models"
	"Mindshare/pkg/snowflake"
	"Mindshare/pkg/response"
	"Mindshare/types"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const UserBookmarksKey = "user:bookmarked:resources:%d" // 用户收藏的资源集合

var _ IBookmarkService = (*BookmarkService)(nil)

type BookmarkService struct {
	BookmarkDAO     *dao.Bookmark
	ResourceDAO     *dao.Resource
	ResourceService IResourceService
	Redis           *redis.Client
}

type IBookmarkService interface {
	Bookmark(ctx context.Context, userID, resourceID uint64) error
	Unbookmark(ctx context.Context, userID, resourceID uint64) error
	IsBookmarked(ctx context.Context, userID, resourceID uint64) (bool, error)
	ListForUser(ctx context.Context, userID uint64, limit, offset int) (*types.BookmarksListResponse, error)
}

// Bookmark 收藏资源
// (resource_id, user_id) 唯一，重复收藏被唯一索引拦下
func (s *BookmarkService) Bookmark(ctx context.Context, userID, resourceID uint64) error {
	resource, err := s.ResourceDAO.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}
	if resource == nil {
		return response.NewError(http.StatusNotFound, "资源不存在")
	}

	bookmark := &models.Bookmark{
		ID:         uint64(snowflake.GenID()),
		ResourceID: resourceID,
		UserID:     userID,
		CreatedAt:  time.Now(),
	}
	if err := s.BookmarkDAO.Create(ctx, bookmark); err != nil {
		if dao.IsDuplicateKey(err) {
			return response.NewError(http.StatusBadRequest, "已经收藏过了")
		}
		return err
	}

	// 更新缓存，失败不影响
	key := fmt.Sprintf(UserBookmarksKey, userID)
	s.Redis.SAdd(ctx, key, resourceID)
	s.Redis.Expire(ctx, key, CacheTTL)
	return nil
}

// Unbookmark 取消收藏
func (s *BookmarkService) Unbookmark(ctx context.Context, userID, resourceID uint64) error {
	exists, err := s.BookmarkDAO.CheckExists(ctx, resourceID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return response.NewError(http.StatusNotFound, "还没有收藏")
	}

	if err := s.BookmarkDAO.DeleteByResourceAndUser(ctx, resourceID, userID); err != nil {
		return err
	}

	s.Redis.SRem(ctx, fmt.Sprintf(UserBookmarksKey, userID), resourceID)
	return nil
}

// IsBookmarked 先查 Redis 集合，没有再落库
func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, resourceID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	key := fmt.Sprintf(UserBookmarksKey, userID)
	exists, err := s.Redis.SIsMember(ctx, key, resourceID).Result()
	if err == nil && exists {
		return true, nil
	}

	exists, err = s.BookmarkDAO.CheckExists(ctx, resourceID, userID)
	if err != nil {
		return false, err
	}
	if exists {
		s.Redis.SAdd(ctx, key, resourceID)
		s.Redis.Expire(ctx, key, CacheTTL)
	}
	return exists, nil
}

// ListForUser 用户收藏列表，内嵌完整资源投影，按收藏时间倒序
func (s *BookmarkService) ListForUser(ctx context.Context, userID uint64, limit, offset int) (*types.BookmarksListResponse, error) {
	ids, total, err := s.BookmarkDAO.ListResourceIDsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	result := &types.BookmarksListResponse{
		Bookmarks: make([]*types.BookmarkResponse, 0, len(ids)),
		Total:     total,
	}
	if len(ids) == 0 {
		return result, nil
	}

	bookmarks, err := s.BookmarkDAO.FindAll(ctx, "user_id = ? AND resource_id IN ?", userID, ids)
	if err != nil {
		return nil, err
	}
	bookmarkMap := make(map[uint64]*models.Bookmark, len(bookmarks))
	for _, b := range bookmarks {
		bookmarkMap[b.ResourceID] = b
	}

	resources, err := s.ResourceDAO.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	resourceMap := make(map[uint64]*models.Resource, len(resources))
	for _, r := range resources {
		resourceMap[r.ID] = r
	}

	// 按收藏时间顺序恢复
	for _, id := range ids {
		resource, ok := resourceMap[id]
		if !ok {
			continue
		}
		resp, err := s.ResourceService.BuildResponse(ctx, resource)
		if err != nil {
			return nil, err
		}
		item := &types.BookmarkResponse{Resource: resp}
		if b, ok := bookmarkMap[id]; ok {
			item.ID = b.ID
			item.CreatedAt = b.CreatedAt
		}
		result.Bookmarks = append(result.Bookmarks, item)
	}
	return result, nil
}
