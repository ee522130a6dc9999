package dao

import (
	"Mindshare/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	user, err := u.Repo.FindByWhere(ctx, "username = ?", username)
	if IsNotFound(err) {
		return nil, nil
	}
	return user, err
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

type Profile struct {
	Repo[models.Profile]
}

func NewProfile(db *gorm.DB) *Profile {
	return &Profile{
		Repo: NewRepo[models.Profile](db),
	}
}

// FindByUserID 按用户查资料
func (p *Profile) FindByUserID(ctx context.Context, userID uint64) (*models.Profile, error) {
	profile, err := p.Repo.FindByWhere(ctx, "user_id = ?", userID)
	if IsNotFound(err) {
		return nil, nil
	}
	return profile, err
}
