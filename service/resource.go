package service

import (
	"Mindshare/dao"
	"Mindshare/models"
	"Mindshare/pkg/log"
	"Mindshare/pkg/response"
	"Mindshare/pkg/snowflake"
	"Mindshare/types"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ResourceCacheKey = "resource:detail:%d" // 资源详情投影缓存
	CacheTTL         = 10 * time.Minute
)

var _ IResourceService = (*ResourceService)(nil)

type ResourceService struct {
	DB             *gorm.DB
	ResourceDAO    *dao.Resource
	FileDAO        *dao.ResourceFile
	ResourceTagDAO *dao.ResourceTag
	CommentDAO     *dao.Comment
	RatingDAO      *dao.Rating
	BookmarkDAO    *dao.Bookmark
	NodeDAO        *dao.MindMapNode
	TagService     ITagService
	UserService    IUserService
	Redis          *redis.Client
}

type IResourceService interface {
	CreateResource(ctx context.Context, userID uint64, req *types.CreateResourceRequest) (*types.ResourceResponse, error)
	UpdateResource(ctx context.Context, userID, resourceID uint64, req *types.UpdateResourceRequest) (*types.ResourceResponse, error)
	GetResource(ctx context.Context, resourceID uint64) (*types.ResourceResponse, error)
	GetResourceBySlug(ctx context.Context, slug string) (*types.ResourceResponse, error)
	ListResources(ctx context.Context, limit, offset int) (*types.ListResourcesResponse, error)
	ListMyResources(ctx context.Context, userID uint64, limit, offset int) (*types.ListResourcesResponse, error)
	DeleteResource(ctx context.Context, userID, resourceID uint64) error
	BuildResponse(ctx context.Context, resource *models.Resource) (*types.ResourceResponse, error)
	InvalidateCache(ctx context.Context, resourceID uint64)
}

func validContentType(ct string) bool {
	switch ct {
	case models.ContentTypeArticle, models.ContentTypeVideo, models.ContentTypePDF,
		models.ContentTypeCourse, models.ContentTypeOther:
		return true
	}
	return false
}

// 难度允许为空
func validDifficulty(d string) bool {
	switch d {
	case "", models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
		return true
	}
	return false
}

// CreateResource 创建资源
// slug、created_by、avg_rating、rating_count 由服务端生成，请求里不接收
func (s *ResourceService) CreateResource(ctx context.Context, userID uint64, req *types.CreateResourceRequest) (*types.ResourceResponse, error) {
	if req.Title == "" {
		return nil, response.NewError(http.StatusBadRequest, "title 不能为空")
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = models.ContentTypeArticle
	}
	if !validContentType(contentType) {
		return nil, response.NewError(http.StatusBadRequest, "content_type 取值无效")
	}
	if !validDifficulty(req.Difficulty) {
		return nil, response.NewError(http.StatusBadRequest, "difficulty 取值无效")
	}

	// 标签全局 get-or-create，幂等，放在事务外
	tags, err := s.TagService.ResolveTags(ctx, req.TagNames)
	if err != nil {
		return nil, err
	}

	resourceSlug, err := s.assignSlug(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	now := time.Now()
	resource := &models.Resource{
		ID:          uint64(snowflake.GenID()),
		Title:       req.Title,
		Slug:        resourceSlug,
		Description: req.Description,
		ContentType: contentType,
		Subject:     req.Subject,
		Difficulty:  req.Difficulty,
		CreatedBy:   userID,
		IsPublished: isPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tagIDs := make([]uint64, 0, len(tags))
	for _, tag := range tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	err = s.ResourceDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(resource).Error; err != nil {
			if dao.IsDuplicateKey(err) {
				return response.NewError(http.StatusBadRequest, "slug 冲突，请重试")
			}
			return err
		}
		if err := s.ResourceTagDAO.ReplaceForResource(tx, resource.ID, tagIDs); err != nil {
			return err
		}
		return s.FileDAO.ReplaceForResource(tx, resource.ID, buildFileRows(resource.ID, req.FilesInput))
	})
	if err != nil {
		return nil, err
	}

	return s.BuildResponse(ctx, resource)
}

// UpdateResource 部分更新
// 传了的字段才改；tag_names / files_input 传了（含空数组）整体替换，没传不动
// slug 首次落库后不再变化
func (s *ResourceService) UpdateResource(ctx context.Context, userID, resourceID uint64, req *types.UpdateResourceRequest) (*types.ResourceResponse, error) {
	resource, err := s.ResourceDAO.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, response.NewError(http.StatusNotFound, "资源不存在")
	}
	if resource.CreatedBy != userID {
		return nil, response.NewError(http.StatusForbidden, "只能修改自己创建的资源")
	}

	updates := map[string]any{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.NewError(http.StatusBadRequest, "title 不能为空")
		}
		updates["title"] = *req.Title
		resource.Title = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		resource.Description = *req.Description
	}
	if req.ContentType != nil {
		if !validContentType(*req.ContentType) {
			return nil, response.NewError(http.StatusBadRequest, "content_type 取值无效")
		}
		updates["content_type"] = *req.ContentType
		resource.ContentType = *req.ContentType
	}
	if req.Subject != nil {
		updates["subject"] = *req.Subject
		resource.Subject = *req.Subject
	}
	if req.Difficulty != nil {
		if !validDifficulty(*req.Difficulty) {
			return nil, response.NewError(http.StatusBadRequest, "difficulty 取值无效")
		}
		updates["difficulty"] = *req.Difficulty
		resource.Difficulty = *req.Difficulty
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
		resource.IsPublished = *req.IsPublished
	}

	// 标签替换在事务外先解析好
	var tagIDs []uint64
	if req.TagNames != nil {
		tags, err := s.TagService.ResolveTags(ctx, *req.TagNames)
		if err != nil {
			return nil, err
		}
		tagIDs = make([]uint64, 0, len(tags))
		for _, tag := range tags {
			tagIDs = append(tagIDs, tag.ID)
		}
	}

	if len(updates) > 0 {
		now := time.Now()
		updates["updated_at"] = now
		resource.UpdatedAt = now
	}

	err = s.ResourceDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Resource{}).Where("id = ?", resourceID).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.TagNames != nil {
			if err := s.ResourceTagDAO.ReplaceForResource(tx, resourceID, tagIDs); err != nil {
				return err
			}
		}
		if req.FilesInput != nil {
			if err := s.FileDAO.ReplaceForResource(tx, resourceID, buildFileRows(resourceID, *req.FilesInput)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.InvalidateCache(ctx, resourceID)
	return s.BuildResponse(ctx, resource)
}

// GetResource 资源详情，先走缓存
func (s *ResourceService) GetResource(ctx context.Context, resourceID uint64) (*types.ResourceResponse, error) {
	key := fmt.Sprintf(ResourceCacheKey, resourceID)
	if raw, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var cached types.ResourceResponse
		if json.Unmarshal([]byte(raw), &cached) == nil {
			return &cached, nil
		}
	}

	resource, err := s.ResourceDAO.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, response.NewError(http.StatusNotFound, "资源不存在")
	}

	resp, err := s.BuildResponse(ctx, resource)
	if err != nil {
		return nil, err
	}

	// 回写缓存，失败不影响请求
	if data, err := json.Marshal(resp); err == nil {
		s.Redis.Set(ctx, key, data, CacheTTL)
	}
	return resp, nil
}

func (s *ResourceService) GetResourceBySlug(ctx context.Context, slug string) (*types.ResourceResponse, error) {
	resource, err := s.ResourceDAO.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, response.NewError(http.StatusNotFound, "资源不存在")
	}
	return s.BuildResponse(ctx, resource)
}

// ListResources 资源列表，按创建时间倒序
func (s *ResourceService) ListResources(ctx context.Context, limit, offset int) (*types.ListResourcesResponse, error) {
	resources, total, err := s.ResourceDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	result := &types.ListResourcesResponse{
		Resources: make([]*types.ResourceResponse, 0, len(resources)),
		Total:     total,
	}
	for _, resource := range resources {
		resp, err := s.BuildResponse(ctx, resource)
		if err != nil {
			return nil, err
		}
		result.Resources = append(result.Resources, resp)
	}
	return result, nil
}

// ListMyResources 当前用户创建的资源，按创建时间倒序
func (s *ResourceService) ListMyResources(ctx context.Context, userID uint64, limit, offset int) (*types.ListResourcesResponse, error) {
	resources, err := s.ResourceDAO.ListByCreator(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.ResourceDAO.FindCount(ctx, "created_by = ?", userID)
	if err != nil {
		return nil, err
	}
	result := &types.ListResourcesResponse{
		Resources: make([]*types.ResourceResponse, 0, len(resources)),
		Total:     total,
	}
	for _, resource := range resources {
		resp, err := s.BuildResponse(ctx, resource)
		if err != nil {
			return nil, err
		}
		result.Resources = append(result.Resources, resp)
	}
	return result, nil
}

// DeleteResource 删除资源
// 附件/评论/评分/收藏/标签关联同事务级联清理，引用它的导图节点置空保留
func (s *ResourceService) DeleteResource(ctx context.Context, userID, resourceID uint64) error {
	resource, err := s.ResourceDAO.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}
	if resource == nil {
		return response.NewError(http.StatusNotFound, "资源不存在")
	}
	if resource.CreatedBy != userID {
		return response.NewError(http.StatusForbidden, "只能删除自己创建的资源")
	}

	err = s.ResourceDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.FileDAO.DeleteByResourceID(tx, resourceID); err != nil {
			return err
		}
		if err := s.ResourceTagDAO.DeleteByResourceID(tx, resourceID); err != nil {
			return err
		}
		if err := s.CommentDAO.DeleteByResourceID(tx, resourceID); err != nil {
			return err
		}
		if err := s.RatingDAO.DeleteByResourceID(tx, resourceID); err != nil {
			return err
		}
		if err := s.BookmarkDAO.DeleteByResourceID(tx, resourceID); err != nil {
			return err
		}
		if err := s.NodeDAO.ClearResourceLinks(tx, resourceID); err != nil {
			return err
		}
		return tx.Where("id = ?", resourceID).Delete(&models.Resource{}).Error
	})
	if err != nil {
		return err
	}

	s.InvalidateCache(ctx, resourceID)
	return nil
}

// BuildResponse 组装资源投影
func (s *ResourceService) BuildResponse(ctx context.Context, resource *models.Resource) (*types.ResourceResponse, error) {
	tagItems, err := s.TagService.GetResourceTags(ctx, resource.ID)
	if err != nil {
		return nil, err
	}

	files, err := s.FileDAO.ListByResourceID(ctx, resource.ID)
	if err != nil {
		return nil, err
	}
	fileItems := make([]types.ResourceFileItem, 0, len(files))
	for _, f := range files {
		fileItems = append(fileItems, types.ResourceFileItem{
			ID:        f.ID,
			FileURL:   f.FileURL,
			Label:     f.Label,
			Order:     f.Order,
			CreatedAt: f.CreatedAt,
		})
	}

	usernames := s.UserService.BatchGetUsernames(ctx, []uint64{resource.CreatedBy})

	return &types.ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Slug:        resource.Slug,
		Description: resource.Description,
		ContentType: resource.ContentType,
		Subject:     resource.Subject,
		Difficulty:  resource.Difficulty,
		Tags:        tagItems,
		Files:       fileItems,
		CreatedBy:   usernames[resource.CreatedBy],
		IsPublished: resource.IsPublished,
		AvgRating:   fmt.Sprintf("%.2f", resource.AvgRating),
		RatingCount: resource.RatingCount,
		CreatedAt:   resource.CreatedAt,
		UpdatedAt:   resource.UpdatedAt,
	}, nil
}

// InvalidateCache 资源或其聚合变更后清缓存
func (s *ResourceService) InvalidateCache(ctx context.Context, resourceID uint64) {
	key := fmt.Sprintf(ResourceCacheKey, resourceID)
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		log.L.Warn("清理资源缓存失败", zap.Uint64("resource_id", resourceID), zap.Error(err))
	}
}

// assignSlug 首次保存时派生 slug，冲突追加最小可用数字后缀，排除自身
func (s *ResourceService) assignSlug(ctx context.Context, title string, excludeID uint64) (string, error) {
	base := makeSlugBase(title)
	if base == "" {
		base = "resource"
	}
	return uniqueSlug(base, func(candidate string) (bool, error) {
		return s.ResourceDAO.IsSlugTaken(ctx, candidate, excludeID)
	})
}

// buildFileRows 入参附件转模型，order 没传用列表下标
func buildFileRows(resourceID uint64, inputs []types.ResourceFileInput) []*models.ResourceFile {
	rows := make([]*models.ResourceFile, 0, len(inputs))
	now := time.Now()
	for i, input := range inputs {
		order := i
		if input.Order != nil {
			order = *input.Order
		}
		rows = append(rows, &models.ResourceFile{
			ID:         uint64(snowflake.GenID()),
			ResourceID: resourceID,
			FileURL:    input.FileURL,
			Label:      input.Label,
			Order:      order,
			CreatedAt:  now,
		})
	}
	return rows
}
