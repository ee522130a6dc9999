package service

import (
	"Mindshare/dao"
	"Mindshare/models"
	"Mindshare/pkg/snowflake"
	"Mindshare/types"
	"context"
	"net/http"
	"time"

	"Mindshare/pkg/log"
	"Mindshare/pkg/response"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type UserService struct {
	DB         *gorm.DB
	UserDAO    *dao.Users
	ProfileDAO *dao.Profile
}

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.ProfileResponse, error)
	GetProfile(ctx context.Context, userID uint64) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error)
	BatchGetUsernames(ctx context.Context, userIDs []uint64) map[uint64]string
}

// Register 创建用户并同事务建空资料
// 资料创建是显式步骤而不是隐式钩子，保证因果可见、可测试
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.ProfileResponse, error) {
	if req.Username == "" {
		return nil, response.NewError(http.StatusBadRequest, "username 不能为空")
	}

	now := time.Now()
	user := &models.Users{
		ID:        uint64(snowflake.GenUserID()),
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	profile := &models.Profile{
		ID:        uint64(snowflake.GenID()),
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.UserDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if dao.IsDuplicateKey(err) {
				return response.NewError(http.StatusBadRequest, "用户名已存在")
			}
			return err
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, err
	}

	return s.buildProfileResponse(user, profile), nil
}

// GetProfile 查询资料，缺失时补建（幂等，不覆盖已有资料）
func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.ProfileResponse, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, response.NewError(http.StatusNotFound, "用户不存在")
		}
		return nil, err
	}

	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildProfileResponse(user, profile), nil
}

// UpdateProfile 只允许更新 bio 和头像
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) (*types.ProfileResponse, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, response.NewError(http.StatusNotFound, "用户不存在")
		}
		return nil, err
	}

	profile, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
		profile.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
		profile.AvatarURL = *req.AvatarURL
	}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.ProfileDAO.UpdateById(ctx, profile.ID, updates); err != nil {
			return nil, err
		}
	}

	return s.buildProfileResponse(user, profile), nil
}

// ensureProfile 资料存在即返回，不存在则补建
// 并发补建靠 user_id 唯一索引兜底，冲突时重查
func (s *UserService) ensureProfile(ctx context.Context, userID uint64) (*models.Profile, error) {
	profile, err := s.ProfileDAO.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	now := time.Now()
	profile = &models.Profile{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ProfileDAO.Create(ctx, profile); err != nil {
		if dao.IsDuplicateKey(err) {
			return s.ProfileDAO.FindByUserID(ctx, userID)
		}
		return nil, err
	}
	return profile, nil
}

// BatchGetUsernames 批量拿用户名，投影层展示用
// 查询失败只记日志返回空 map，不阻断主流程
func (s *UserService) BatchGetUsernames(ctx context.Context, userIDs []uint64) map[uint64]string {
	result := make(map[uint64]string, len(userIDs))
	if len(userIDs) == 0 {
		return result
	}

	var users []*models.Users
	err := s.UserDAO.Db.WithContext(ctx).Where("id IN ?", userIDs).Find(&users).Error
	if err != nil {
		log.L.Error("批量查询用户失败", zap.Error(err))
		return result
	}
	for _, user := range users {
		result[user.ID] = user.Username
	}
	return result
}

func (s *UserService) buildProfileResponse(user *models.Users, profile *models.Profile) *types.ProfileResponse {
	return &types.ProfileResponse{
		ID: profile.ID,
		User: types.UserPublic{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
