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

var _ ICommentService = (*CommentService)(nil)

type CommentService struct {
	DB          *gorm.DB
	CommentDAO  *dao.Comment
	ResourceDAO *dao.Resource
	UserService IUserService
}

type ICommentService interface {
	CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	ListComments(ctx context.Context, resourceID uint64) (*types.CommentsListResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
}

// CreateComment 创建评论
// 父评论必须在同一个资源下，不能是自己
// 创建时父节点已固定，不会形成环
func (s *CommentService) CreateComment(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	if req.Body == "" {
		return nil, response.NewError(http.StatusBadRequest, "body 不能为空")
	}

	exist, err := s.ResourceDAO.IsExist(ctx, "id = ?", req.ResourceID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NewError(http.StatusNotFound, "资源不存在")
	}

	if req.ParentID != 0 {
		parent, err := s.CommentDAO.GetByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, response.NewError(http.StatusBadRequest, "父评论不存在")
		}
		if parent.ResourceID != req.ResourceID {
			return nil, response.NewError(http.StatusBadRequest, "父评论不属于该资源")
		}
	}

	now := time.Now()
	comment := &models.Comment{
		ID:         uint64(snowflake.GenID()),
		ResourceID: req.ResourceID,
		UserID:     userID,
		ParentID:   req.ParentID,
		Body:       req.Body,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	usernames := s.UserService.BatchGetUsernames(ctx, []uint64{userID})
	return buildCommentResponse(comment, usernames[userID]), nil
}

// ListComments 资源下全部评论，按创建时间正序
// 软删除的评论保留占位但正文置空，回复树不塌
func (s *CommentService) ListComments(ctx context.Context, resourceID uint64) (*types.CommentsListResponse, error) {
	comments, err := s.CommentDAO.ListByResourceID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}
	usernames := s.UserService.BatchGetUsernames(ctx, userIDs)

	result := &types.CommentsListResponse{
		Comments: make([]*types.CommentResponse, 0, len(comments)),
		Total:    int64(len(comments)),
	}
	for _, c := range comments {
		result.Comments = append(result.Comments, buildCommentResponse(c, usernames[c.UserID]))
	}
	return result, nil
}

// DeleteComment 软删除，只有作者能删，回复子树保留
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return response.NewError(http.StatusNotFound, "评论不存在")
	}
	if comment.UserID != userID {
		return response.NewError(http.StatusForbidden, "只能删除自己的评论")
	}
	if comment.IsDeleted {
		return nil
	}
	return s.CommentDAO.MarkDeleted(ctx, commentID)
}

func buildCommentResponse(c *models.Comment, username string) *types.CommentResponse {
	body := c.Body
	if c.IsDeleted {
		body = ""
	}
	return &types.CommentResponse{
		ID:         c.ID,
		ResourceID: c.ResourceID,
		Username:   username,
		ParentID:   c.ParentID,
		Body:       body,
		IsDeleted:  c.IsDeleted,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
