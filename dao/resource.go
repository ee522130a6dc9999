package dao

import (
	"Mindshare/models"
	"context"

	"gorm.io/gorm"
)

type Resource struct {
	Repo[models.Resource]
}

func NewResource(db *gorm.DB) *Resource {
	return &Resource{
		Repo: NewRepo[models.Resource](db),
	}
}

// GetByID 根据ID获取资源
func (d *Resource) GetByID(ctx context.Context, resourceID uint64) (*models.Resource, error) {
	resource, err := d.Repo.FindById(ctx, resourceID)
	if IsNotFound(err) {
		return nil, nil
	}
	return resource, err
}

// GetBySlug 根据 slug 获取资源
func (d *Resource) GetBySlug(ctx context.Context, slug string) (*models.Resource, error) {
	resource, err := d.Repo.FindByWhere(ctx, "slug = ?", slug)
	if IsNotFound(err) {
		return nil, nil
	}
	return resource, err
}

// IsSlugTaken slug 冲突检查，排除自身
func (d *Resource) IsSlugTaken(ctx context.Context, slug string, excludeID uint64) (bool, error) {
	var count int64
	err := d.Model(ctx).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

// List 资源列表，按创建时间倒序
func (d *Resource) List(ctx context.Context, limit, offset int) ([]*models.Resource, int64, error) {
	var (
		resources []*models.Resource
		total     int64
	)
	if err := d.Model(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := d.Db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&resources).Error
	return resources, total, err
}

// FindByIDs 批量查询
func (d *Resource) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Resource, error) {
	var resources []*models.Resource
	if len(ids) == 0 {
		return resources, nil
	}
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&resources).Error
	return resources, err
}

// ListByCreator 某个用户创建的资源
func (d *Resource) ListByCreator(ctx context.Context, userID uint64, limit, offset int) ([]*models.Resource, error) {
	var resources []*models.Resource
	err := d.Db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&resources).Error
	return resources, err
}
