package service

import (
	"Mindshare/dao"
	"Mindshare/models"
	"Mindshare/pkg/response"
	"Mindshare/pkg/snowflake"
	"Mindshare/types"
	"context"
	"math"
	"net/http"
	"time"

	"gorm.io/gorm"
)

var _ IRatingService = (*RatingService)(nil)

type RatingService struct {
	DB              *gorm.DB
	RatingDAO       *dao.Rating
	ResourceDAO     *dao.Resource
	UserService     IUserService
	ResourceService IResourceService
}

type IRatingService interface {
	Rate(ctx context.Context, userID, resourceID uint64, req *types.RateRequest) (*types.RatingResponse, error)
	CreateRating(ctx context.Context, userID, resourceID uint64, score int) (*types.RatingResponse, error)
	RemoveRating(ctx context.Context, userID, resourceID uint64) error
	ListRatings(ctx context.Context, resourceID uint64) ([]*types.RatingResponse, error)
}

// validateScore 评分边界校验
// 完整评分写入和窄入口 rate 都走这里，换入口绕不过检查
func validateScore(score int) error {
	if score < 1 || score > 5 {
		return response.NewError(http.StatusBadRequest, "score 必须在 1 到 5 之间")
	}
	return nil
}

// Rate 窄入口：有评分就改分，没有就新建
// 聚合重算和评分写入同一个事务，中间不暴露脏的统计值
func (s *RatingService) Rate(ctx context.Context, userID, resourceID uint64, req *types.RateRequest) (*types.RatingResponse, error) {
	if err := validateScore(req.Score); err != nil {
		return nil, err
	}

	resource, err := s.ResourceDAO.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, response.NewError(http.StatusNotFound, "资源不存在")
	}

	var rating *models.Rating
	err = s.RatingDAO.Transaction(ctx, func(tx *gorm.DB) error {
		var existing models.Rating
		err := tx.Where("resource_id = ? AND user_id = ?", resourceID, userID).First(&existing).Error
		switch {
		case err == nil:
			existing.Score = req.Score
			existing.UpdatedAt = time.Now()
			if err := tx.Model(&models.Rating{}).Where("id = ?", existing.ID).
				Updates(map[string]any{"score": req.Score, "updated_at": existing.UpdatedAt}).Error; err != nil {
				return err
			}
			rating = &existing
		case dao.IsNotFound(err):
			now := time.Now()
			rating = &models.Rating{
				ID:         uint64(snowflake.GenID()),
				ResourceID: resourceID,
				UserID:     userID,
				Score:      req.Score,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := tx.Create(rating).Error; err != nil {
				if dao.IsDuplicateKey(err) {
					return response.NewError(http.StatusBadRequest, "已经评过分了")
				}
				return err
			}
		default:
			return err
		}
		return s.recomputeAggregates(tx, resourceID)
	})
	if err != nil {
		return nil, err
	}

	s.ResourceService.InvalidateCache(ctx, resourceID)
	return s.buildResponse(ctx, rating), nil
}

// CreateRating 完整实体入口：重复评分直接拒绝
func (s *RatingService) CreateRating(ctx context.Context, userID, resourceID uint64, score int) (*types.RatingResponse, error) {
	if err := validateScore(score); err != nil {
		return nil, err
	}

	resource, err := s.ResourceDAO.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, response.NewError(http.StatusNotFound, "资源不存在")
	}

	now := time.Now()
	rating := &models.Rating{
		ID:         uint64(snowflake.GenID()),
		ResourceID: resourceID,
		UserID:     userID,
		Score:      score,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.RatingDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			if dao.IsDuplicateKey(err) {
				return response.NewError(http.StatusBadRequest, "已经评过分了")
			}
			return err
		}
		return s.recomputeAggregates(tx, resourceID)
	})
	if err != nil {
		return nil, err
	}

	s.ResourceService.InvalidateCache(ctx, resourceID)
	return s.buildResponse(ctx, rating), nil
}

// RemoveRating 删除评分并同事务重算聚合
// 最后一条删掉后归零 0.00 / 0
func (s *RatingService) RemoveRating(ctx context.Context, userID, resourceID uint64) error {
	rating, err := s.RatingDAO.FindByResourceAndUser(ctx, resourceID, userID)
	if err != nil {
		return err
	}
	if rating == nil {
		return response.NewError(http.StatusNotFound, "还没有评过分")
	}

	err = s.RatingDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", rating.ID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return s.recomputeAggregates(tx, resourceID)
	})
	if err != nil {
		return err
	}

	s.ResourceService.InvalidateCache(ctx, resourceID)
	return nil
}

// ListRatings 资源的评分列表
func (s *RatingService) ListRatings(ctx context.Context, resourceID uint64) ([]*types.RatingResponse, error) {
	ratings, err := s.RatingDAO.ListByResourceID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(ratings))
	for _, r := range ratings {
		userIDs = append(userIDs, r.UserID)
	}
	usernames := s.UserService.BatchGetUsernames(ctx, userIDs)

	result := make([]*types.RatingResponse, 0, len(ratings))
	for _, r := range ratings {
		result = append(result, &types.RatingResponse{
			ID:         r.ID,
			ResourceID: r.ResourceID,
			Username:   usernames[r.UserID],
			Score:      r.Score,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return result, nil
}

// recomputeAggregates 重算资源的冗余评分统计
// 显式具名操作，所有评分写入路径都调它，必须和写入同事务
func (s *RatingService) recomputeAggregates(tx *gorm.DB, resourceID uint64) error {
	total, count, err := s.RatingDAO.SumAndCount(tx, resourceID)
	if err != nil {
		return err
	}

	avg := 0.0
	if count > 0 {
		// 保留两位小数，四舍五入
		avg = math.Round(float64(total)/float64(count)*100) / 100
	}

	return tx.Model(&models.Resource{}).
		Where("id = ?", resourceID).
		Updates(map[string]any{
			"avg_rating":   avg,
			"rating_count": count,
			"updated_at":   time.Now(),
		}).Error
}

func (s *RatingService) buildResponse(ctx context.Context, rating *models.Rating) *types.RatingResponse {
	usernames := s.UserService.BatchGetUsernames(ctx, []uint64{rating.UserID})
	return &types.RatingResponse{
		ID:         rating.ID,
		ResourceID: rating.ResourceID,
		Username:   usernames[rating.UserID],
		Score:      rating.Score,
		CreatedAt:  rating.CreatedAt,
		UpdatedAt:  rating.UpdatedAt,
	}
}
