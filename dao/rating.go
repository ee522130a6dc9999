package dao

import (
	"Mindshare/models"
	"context"

	"gorm.io/gorm"
)

type Rating struct {
	Repo[models.Rating]
}

func NewRating(db *gorm.DB) *Rating {
	return &Rating{
		Repo: NewRepo[models.Rating](db),
	}
}

// FindByResourceAndUser 查询用户对资源的评分
func (d *Rating) FindByResourceAndUser(ctx context.Context, resourceID, userID uint64) (*models.Rating, error) {
	rating, err := d.Repo.FindByWhere(ctx, "resource_id = ? AND user_id = ?", resourceID, userID)
	if IsNotFound(err) {
		return nil, nil
	}
	return rating, err
}

// ListByResourceID 资源的全部评分，按时间倒序
func (d *Rating) ListByResourceID(ctx context.Context, resourceID uint64) ([]*models.Rating, error) {
	var ratings []*models.Rating
	err := d.Db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// SumAndCount 事务内重算聚合用，必须与评分写入同事务
func (d *Rating) SumAndCount(tx *gorm.DB, resourceID uint64) (int64, int64, error) {
	type row struct {
		Total int64
		Cnt   int64
	}
	var r row
	err := tx.Model(&models.Rating{}).
		Select("COALESCE(SUM(score), 0) AS total, COUNT(*) AS cnt").
		Where("resource_id = ?", resourceID).
		Scan(&r).Error
	return r.Total, r.Cnt, err
}

// DeleteByResourceID 资源删除时清理评分
func (d *Rating) DeleteByResourceID(tx *gorm.DB, resourceID uint64) error {
	return tx.Where("resource_id = ?", resourceID).Delete(&models.Rating{}).Error
}
