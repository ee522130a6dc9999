package dao

import (
	"Mindshare/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// GetByID 根据ID获取评论
func (d *Comment) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	comment, err := d.Repo.FindById(ctx, commentID)
	if IsNotFound(err) {
		return nil, nil
	}
	return comment, err
}

// ListByResourceID 资源下全部评论，按创建时间正序
func (d *Comment) ListByResourceID(ctx context.Context, resourceID uint64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// MarkDeleted 软删除，回复子树保留
func (d *Comment) MarkDeleted(ctx context.Context, commentID uint64) error {
	return d.Model(ctx).
		Where("id = ?", commentID).
		Update("is_deleted", true).Error
}

// DeleteByResourceID 资源删除时物理清理整个评论树
func (d *Comment) DeleteByResourceID(tx *gorm.DB, resourceID uint64) error {
	return tx.Where("resource_id = ?", resourceID).Delete(&models.Comment{}).Error
}
