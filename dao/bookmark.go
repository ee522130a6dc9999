package dao

import (
	"Mindshare/models"
	"context"

	"gorm.io/gorm"
)

type Bookmark struct {
	Repo[models.Bookmark]
}

func NewBookmark(db *gorm.DB) *Bookmark {
	return &Bookmark{
		Repo: NewRepo[models.Bookmark](db),
	}
}

// CheckExists 是否已收藏
func (d *Bookmark) CheckExists(ctx context.Context, resourceID, userID uint64) (bool, error) {
	return d.Repo.IsExist(ctx, "resource_id = ? AND user_id = ?", resourceID, userID)
}

// DeleteByResourceAndUser 取消收藏
func (d *Bookmark) DeleteByResourceAndUser(ctx context.Context, resourceID, userID uint64) error {
	return d.Db.WithContext(ctx).
		Where("resource_id = ? AND user_id = ?", resourceID, userID).
		Delete(&models.Bookmark{}).Error
}

// ListResourceIDsByUser 用户收藏的资源ID，按收藏时间倒序
func (d *Bookmark) ListResourceIDsByUser(ctx context.Context, userID uint64, limit, offset int) ([]uint64, int64, error) {
	var total int64
	if err := d.Model(ctx).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint64
	err := d.Model(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Pluck("resource_id", &ids).Error
	return ids, total, err
}

// DeleteByResourceID 资源删除时清理收藏
func (d *Bookmark) DeleteByResourceID(tx *gorm.DB, resourceID uint64) error {
	return tx.Where("resource_id = ?", resourceID).Delete(&models.Bookmark{}).Error
}
