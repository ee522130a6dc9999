package service

import (
	"Mindshare/dao"
	"Mindshare/models"
	"Mindshare/pkg/response"
	"Mindshare/pkg/snowflake"
	"Mindshare/types"
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"
)

// 父链校验的步数上限，防御脏数据里的环
const maxTreeDepth = 1000

var _ IMindMapService = (*MindMapService)(nil)

type MindMapService struct {
	DB          *gorm.DB
	MindMapDAO  *dao.MindMap
	NodeDAO     *dao.MindMapNode
	ResourceDAO *dao.Resource
	UserService IUserService
}

type IMindMapService interface {
	CreateMindMap(ctx context.Context, userID uint64, req *types.CreateMindMapRequest) (*types.MindMapResponse, error)
	UpdateMindMap(ctx context.Context, userID, mapID uint64, req *types.UpdateMindMapRequest) (*types.MindMapResponse, error)
	GetMindMap(ctx context.Context, userID, mapID uint64) (*types.MindMapDetailResponse, error)
	ListForUser(ctx context.Context, ownerID uint64) ([]*types.MindMapResponse, error)
	DeleteMindMap(ctx context.Context, userID, mapID uint64) error

	CreateNode(ctx context.Context, userID uint64, req *types.CreateNodeRequest) (*types.NodeResponse, error)
	UpdateNode(ctx context.Context, userID, nodeID uint64, req *types.UpdateNodeRequest) (*types.NodeResponse, error)
	DeleteNode(ctx context.Context, userID, nodeID uint64) error
}

// CreateMindMap 创建导图
func (s *MindMapService) CreateMindMap(ctx context.Context, userID uint64, req *types.CreateMindMapRequest) (*types.MindMapResponse, error) {
	if req.Title == "" {
		return nil, response.NewError(http.StatusBadRequest, "title 不能为空")
	}

	now := time.Now()
	m := &models.MindMap{
		ID:          uint64(snowflake.GenID()),
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.MindMapDAO.Create(ctx, m); err != nil {
		return nil, err
	}
	return s.buildMapResponse(ctx, m), nil
}

// UpdateMindMap 部分更新，只有属主能改
func (s *MindMapService) UpdateMindMap(ctx context.Context, userID, mapID uint64, req *types.UpdateMindMapRequest) (*types.MindMapResponse, error) {
	m, err := s.ownedMindMap(ctx, userID, mapID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.NewError(http.StatusBadRequest, "title 不能为空")
		}
		updates["title"] = *req.Title
		m.Title = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		m.Description = *req.Description
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
		m.IsPublic = *req.IsPublic
	}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.MindMapDAO.UpdateById(ctx, mapID, updates); err != nil {
			return nil, err
		}
	}
	return s.buildMapResponse(ctx, m), nil
}

// GetMindMap 导图详情带全部节点
// 私有导图只有属主可见
func (s *MindMapService) GetMindMap(ctx context.Context, userID, mapID uint64) (*types.MindMapDetailResponse, error) {
	m, err := s.MindMapDAO.GetByID(ctx, mapID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, response.NewError(http.StatusNotFound, "导图不存在")
	}
	if !m.IsPublic && m.OwnerID != userID {
		return nil, response.NewError(http.StatusForbidden, "无权查看该导图")
	}

	nodes, err := s.NodeDAO.ListByMindMapID(ctx, mapID)
	if err != nil {
		return nil, err
	}

	nodeItems := make([]*types.NodeResponse, 0, len(nodes))
	for _, node := range nodes {
		nodeItems = append(nodeItems, buildNodeResponse(node))
	}
	return &types.MindMapDetailResponse{
		MindMap: s.buildMapResponse(ctx, m),
		Nodes:   nodeItems,
	}, nil
}

// ListForUser 用户的导图列表
func (s *MindMapService) ListForUser(ctx context.Context, ownerID uint64) ([]*types.MindMapResponse, error) {
	maps, err := s.MindMapDAO.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	result := make([]*types.MindMapResponse, 0, len(maps))
	for _, m := range maps {
		result = append(result, s.buildMapResponse(ctx, m))
	}
	return result, nil
}

// DeleteMindMap 删除导图，同事务级联删掉全部节点
// 不会出现删了一半的导图
func (s *MindMapService) DeleteMindMap(ctx context.Context, userID, mapID uint64) error {
	if _, err := s.ownedMindMap(ctx, userID, mapID); err != nil {
		return err
	}

	return s.MindMapDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.NodeDAO.DeleteByMindMapID(tx, mapID); err != nil {
			return err
		}
		return tx.Where("id = ?", mapID).Delete(&models.MindMap{}).Error
	})
}

// CreateNode 创建节点
// 父节点必须在同一张导图里；关联的资源必须存在
func (s *MindMapService) CreateNode(ctx context.Context, userID uint64, req *types.CreateNodeRequest) (*types.NodeResponse, error) {
	if req.Title == "" {
		return nil, response.NewError(http.StatusBadRequest, "title 不能为空")
	}
	if _, err := s.ownedMindMap(ctx, userID, req.MindMapID); err != nil {
		return nil, err
	}

	if req.ParentID != 0 {
		parent, err := s.NodeDAO.GetByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, response.NewError(http.StatusBadRequest, "父节点不存在")
		}
		if parent.MindMapID != req.MindMapID {
			return nil, response.NewError(http.StatusBadRequest, "父节点不属于该导图")
		}
	}

	if req.ResourceID != 0 {
		exist, err := s.ResourceDAO.IsExist(ctx, "id = ?", req.ResourceID)
		if err != nil {
			return nil, err
		}
		if !exist {
			return nil, response.NewError(http.StatusBadRequest, "关联的资源不存在")
		}
	}

	now := time.Now()
	node := &models.MindMapNode{
		ID:         uint64(snowflake.GenID()),
		MindMapID:  req.MindMapID,
		ParentID:   req.ParentID,
		Title:      req.Title,
		Note:       req.Note,
		ResourceID: req.ResourceID,
		PositionX:  req.PositionX,
		PositionY:  req.PositionY,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.NodeDAO.Create(ctx, node); err != nil {
		return nil, err
	}
	return buildNodeResponse(node), nil
}

// UpdateNode 部分更新节点
// 换父节点要过校验：同一张导图、不是自己、不是自己的后代
func (s *MindMapService) UpdateNode(ctx context.Context, userID, nodeID uint64, req *types.UpdateNodeRequest) (*types.NodeResponse, error) {
	node, err := s.NodeDAO.GetByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, response.NewError(http.StatusNotFound, "节点不存在")
	}
	if _, err := s.ownedMindMap(ctx, userID, node.MindMapID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.ParentID != nil {
		if err := s.validateParent(ctx, node, *req.ParentID); err != nil {
			return nil, err
		}
		updates["parent_id"] = *req.ParentID
		node.ParentID = *req.ParentID
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.NewError(http.StatusBadRequest, "title 不能为空")
		}
		updates["title"] = *req.Title
		node.Title = *req.Title
	}
	if req.Note != nil {
		updates["note"] = *req.Note
		node.Note = *req.Note
	}
	if req.ResourceID != nil {
		if *req.ResourceID != 0 {
			exist, err := s.ResourceDAO.IsExist(ctx, "id = ?", *req.ResourceID)
			if err != nil {
				return nil, err
			}
			if !exist {
				return nil, response.NewError(http.StatusBadRequest, "关联的资源不存在")
			}
		}
		updates["resource_id"] = *req.ResourceID
		node.ResourceID = *req.ResourceID
	}
	if req.PositionX != nil {
		updates["position_x"] = *req.PositionX
		node.PositionX = *req.PositionX
	}
	if req.PositionY != nil {
		updates["position_y"] = *req.PositionY
		node.PositionY = *req.PositionY
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.NodeDAO.UpdateById(ctx, nodeID, updates); err != nil {
			return nil, err
		}
	}
	return buildNodeResponse(node), nil
}

// DeleteNode 删除节点，同事务级联删掉整棵子树
func (s *MindMapService) DeleteNode(ctx context.Context, userID, nodeID uint64) error {
	node, err := s.NodeDAO.GetByID(ctx, nodeID)
	if err != nil {
		return err
	}
	if node == nil {
		return response.NewError(http.StatusNotFound, "节点不存在")
	}
	if _, err := s.ownedMindMap(ctx, userID, node.MindMapID); err != nil {
		return err
	}

	subtree, err := s.collectSubtree(ctx, node)
	if err != nil {
		return err
	}
	return s.NodeDAO.Transaction(ctx, func(tx *gorm.DB) error {
		return s.NodeDAO.DeleteByIDs(tx, subtree)
	})
}

// validateParent 换父校验
// 从新父节点沿 parent 链往上走，撞到自己说明新父是自己的后代，会成环
func (s *MindMapService) validateParent(ctx context.Context, node *models.MindMapNode, newParentID uint64) error {
	if newParentID == 0 {
		return nil
	}
	if newParentID == node.ID {
		return response.NewError(http.StatusBadRequest, "父节点不能是自己")
	}

	parent, err := s.NodeDAO.GetByID(ctx, newParentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return response.NewError(http.StatusBadRequest, "父节点不存在")
	}
	if parent.MindMapID != node.MindMapID {
		return response.NewError(http.StatusBadRequest, "父节点不属于该导图")
	}

	current := parent
	for depth := 0; depth < maxTreeDepth; depth++ {
		if current.ParentID == 0 {
			return nil
		}
		if current.ParentID == node.ID {
			return response.NewError(http.StatusBadRequest, "不能把节点挂到自己的后代下面")
		}
		current, err = s.NodeDAO.GetByID(ctx, current.ParentID)
		if err != nil {
			return err
		}
		if current == nil {
			return nil
		}
	}
	return response.NewError(http.StatusBadRequest, "节点层级过深")
}

// collectSubtree 广度优先收集节点及其全部后代
// visited 防脏数据里的父子环，遇到环时不重复入队，保证能走完
func (s *MindMapService) collectSubtree(ctx context.Context, root *models.MindMapNode) ([]uint64, error) {
	result := []uint64{root.ID}
	visited := map[uint64]bool{root.ID: true}
	queue := []uint64{root.ID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		children, err := s.NodeDAO.ListByParentID(ctx, current)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			result = append(result, child.ID)
			queue = append(queue, child.ID)
		}
	}
	return result, nil
}

func (s *MindMapService) ownedMindMap(ctx context.Context, userID, mapID uint64) (*models.MindMap, error) {
	m, err := s.MindMapDAO.GetByID(ctx, mapID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, response.NewError(http.StatusNotFound, "导图不存在")
	}
	if m.OwnerID != userID {
		return nil, response.NewError(http.StatusForbidden, "只有属主能操作该导图")
	}
	return m, nil
}

func (s *MindMapService) buildMapResponse(ctx context.Context, m *models.MindMap) *types.MindMapResponse {
	usernames := s.UserService.BatchGetUsernames(ctx, []uint64{m.OwnerID})
	return &types.MindMapResponse{
		ID:          m.ID,
		Owner:       usernames[m.OwnerID],
		Title:       m.Title,
		Description: m.Description,
		IsPublic:    m.IsPublic,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func buildNodeResponse(node *models.MindMapNode) *types.NodeResponse {
	return &types.NodeResponse{
		ID:         node.ID,
		MindMapID:  node.MindMapID,
		ParentID:   node.ParentID,
		Title:      node.Title,
		Note:       node.Note,
		ResourceID: node.ResourceID,
		PositionX:  node.PositionX,
		PositionY:  node.PositionY,
		CreatedAt:  node.CreatedAt,
		UpdatedAt:  node.UpdatedAt,
	}
}
