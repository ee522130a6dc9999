package handler

import (
	"Mindshare/config"
	"Mindshare/middleware"
	"Mindshare/pkg/context"
	"Mindshare/pkg/response"
	"Mindshare/service"
	"Mindshare/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService service.IUserService
	Config      *config.Config
}

func (u *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/users")
	g.POST("/register", context.Wrap(u.Register))
	g.GET("/me/profile", middleware.Identity(), context.Wrap(u.GetMyProfile))
	g.PUT("/me/profile", middleware.Identity(), context.Wrap(u.UpdateMyProfile))
	g.GET("/:id/profile", context.Wrap(u.GetProfile))
}

func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	profile, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) GetMyProfile(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	profile, err := u.UserService.GetProfile(c.Request.Context(), uint64(uid))
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) UpdateMyProfile(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	profile, err := u.UserService.UpdateProfile(c.Request.Context(), uint64(uid), &req)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (u *User) GetProfile(c *gin.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	profile, err := u.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}
