package dao

import (
	"Mindshare/models"
	"context"

	"gorm.io/gorm"
)

type MindMap struct {
	Repo[models.MindMap]
}

type MindMapNode struct {
	Repo[models.MindMapNode]
}

func NewMindMap(db *gorm.DB) *MindMap {
	return &MindMap{
		Repo: NewRepo[models.MindMap](db),
	}
}

func NewMindMapNode(db *gorm.DB) *MindMapNode {
	return &MindMapNode{
		Repo: NewRepo[models.MindMapNode](db),
	}
}

// GetByID 根据ID获取导图
func (d *MindMap) GetByID(ctx context.Context, mapID uint64) (*models.MindMap, error) {
	m, err := d.Repo.FindById(ctx, mapID)
	if IsNotFound(err) {
		return nil, nil
	}
	return m, err
}

// ListByOwner 用户的导图列表，按创建时间倒序
func (d *MindMap) ListByOwner(ctx context.Context, ownerID uint64) ([]*models.MindMap, error) {
	var maps []*models.MindMap
	err := d.Db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&maps).Error
	return maps, err
}

// GetByID 根据ID获取节点
func (d *MindMapNode) GetByID(ctx context.Context, nodeID uint64) (*models.MindMapNode, error) {
	node, err := d.Repo.FindById(ctx, nodeID)
	if IsNotFound(err) {
		return nil, nil
	}
	return node, err
}

// ListByMindMapID 导图的全部节点，按ID正序
func (d *MindMapNode) ListByMindMapID(ctx context.Context, mapID uint64) ([]*models.MindMapNode, error) {
	var nodes []*models.MindMapNode
	err := d.Db.WithContext(ctx).
		Where("mindmap_id = ?", mapID).
		Order("id ASC").
		Find(&nodes).Error
	return nodes, err
}

// ListByParentID 直接子节点
func (d *MindMapNode) ListByParentID(ctx context.Context, parentID uint64) ([]*models.MindMapNode, error) {
	var nodes []*models.MindMapNode
	err := d.Db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("id ASC").
		Find(&nodes).Error
	return nodes, err
}

// DeleteByIDs 批量删除节点，级联删除子树时在事务里调用
func (d *MindMapNode) DeleteByIDs(tx *gorm.DB, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Where("id IN ?", ids).Delete(&models.MindMapNode{}).Error
}

// DeleteByMindMapID 删除导图时级联清空全部节点
func (d *MindMapNode) DeleteByMindMapID(tx *gorm.DB, mapID uint64) error {
	return tx.Where("mindmap_id = ?", mapID).Delete(&models.MindMapNode{}).Error
}

// ClearResourceLinks 资源删除时把引用它的节点置空，节点本身保留
func (d *MindMapNode) ClearResourceLinks(tx *gorm.DB, resourceID uint64) error {
	return tx.Model(&models.MindMapNode{}).
		Where("resource_id = ?", resourceID).
		Update("resource_id", 0).Error
}
