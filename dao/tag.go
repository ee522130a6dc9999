package dao

import (
	"Mindshare/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Tag struct {
	Repo[models.Tag]
}

type ResourceTag struct {
	Repo[models.ResourceTag]
}

func NewTag(db *gorm.DB) *Tag {
	return &Tag{
		Repo: NewRepo[models.Tag](db),
	}
}

func NewResourceTag(db *gorm.DB) *ResourceTag {
	return &ResourceTag{
		Repo: NewRepo[models.ResourceTag](db),
	}
}

// FindByName 根据名称精确查询标签
func (d *Tag) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	tag, err := d.Repo.FindByWhere(ctx, "name = ?", name)
	if IsNotFound(err) {
		return nil, nil
	}
	return tag, err
}

// BatchFindByNames 批量按名称查询，返回 name -> Tag
func (d *Tag) BatchFindByNames(ctx context.Context, names []string) (map[string]*models.Tag, error) {
	result := make(map[string]*models.Tag, len(names))
	if len(names) == 0 {
		return result, nil
	}
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	for _, tag := range tags {
		result[tag.Name] = tag
	}
	return result, nil
}

// BatchCreate 批量创建标签
// 并发创建同名标签时靠唯一索引 + DoNothing 兜底，冲突行由调用方重查拿已有记录
func (d *Tag) BatchCreate(ctx context.Context, tags []*models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(tags, 100).Error
}

// FindByResourceID 查询资源当前的标签，按关联写入顺序返回
func (d *ResourceTag) FindByResourceID(ctx context.Context, resourceID uint64) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).
		Model(&models.Tag{}).
		Joins("INNER JOIN resource_tags ON resource_tags.tag_id = tags.id").
		Where("resource_tags.resource_id = ?", resourceID).
		Order("resource_tags.id ASC").
		Find(&tags).Error
	return tags, err
}

// ReplaceForResource 整体替换资源的标签关联，必须在事务里调用
func (d *ResourceTag) ReplaceForResource(tx *gorm.DB, resourceID uint64, tagIDs []uint64) error {
	if err := tx.Where("resource_id = ?", resourceID).Delete(&models.ResourceTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]*models.ResourceTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, &models.ResourceTag{
			ResourceID: resourceID,
			TagID:      tagID,
		})
	}
	return tx.Create(&rows).Error
}

// DeleteByResourceID 资源删除时清理标签关联
func (d *ResourceTag) DeleteByResourceID(tx *gorm.DB, resourceID uint64) error {
	return tx.Where("resource_id = ?", resourceID).Delete(&models.ResourceTag{}).Error
}
