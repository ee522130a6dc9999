package dao

import (
	"Mindshare/models"
	"context"

	"gorm.io/gorm"
)

type ResourceFile struct {
	Repo[models.ResourceFile]
}

func NewResourceFile(db *gorm.DB) *ResourceFile {
	return &ResourceFile{
		Repo: NewRepo[models.ResourceFile](db),
	}
}

// ListByResourceID 附件列表，order 升序再按创建时间
func (d *ResourceFile) ListByResourceID(ctx context.Context, resourceID uint64) ([]*models.ResourceFile, error) {
	var files []*models.ResourceFile
	err := d.Db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Order("sort_order ASC, created_at ASC, id ASC").
		Find(&files).Error
	return files, err
}

// ReplaceForResource 清空后按给定顺序重建附件，必须在事务里调用
// 替换是全量覆盖不做合并，v1 不做按附件的增量更新
func (d *ResourceFile) ReplaceForResource(tx *gorm.DB, resourceID uint64, files []*models.ResourceFile) error {
	if err := tx.Where("resource_id = ?", resourceID).Delete(&models.ResourceFile{}).Error; err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}
	return tx.Create(&files).Error
}

// DeleteByResourceID 资源删除时清理附件
func (d *ResourceFile) DeleteByResourceID(tx *gorm.DB, resourceID uint64) error {
	return tx.Where("resource_id = ?", resourceID).Delete(&models.ResourceFile{}).Error
}
