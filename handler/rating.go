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

type Rating struct {
	RatingService service.IRatingService
	Config        *config.Config
}

func (h *Rating) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/resources/:id/ratings", context.Wrap(h.List))

	g := r.Group("/v1/resources/:id", middleware.Identity())
	g.POST("/rate", context.Wrap(h.Rate))
	g.POST("/ratings", context.Wrap(h.Create))
	g.DELETE("/rating", context.Wrap(h.Remove))
}

// Rate 窄入口：已评过分就改分
func (h *Rating) Rate(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req types.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	rating, err := h.RatingService.Rate(c.Request.Context(), uint64(uid), resourceID, &req)
	if err != nil {
		return err
	}
	response.Success(c, rating)
	return nil
}

// Create 完整实体入口：重复评分直接报错
func (h *Rating) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req types.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	rating, err := h.RatingService.CreateRating(c.Request.Context(), uint64(uid), resourceID, req.Score)
	if err != nil {
		return err
	}
	response.Success(c, rating)
	return nil
}

func (h *Rating) Remove(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.RatingService.RemoveRating(c.Request.Context(), uint64(uid), resourceID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Rating) List(c *gin.Context) error {
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ratings, err := h.RatingService.ListRatings(c.Request.Context(), resourceID)
	if err != nil {
		return err
	}
	response.Success(c, ratings)
	return nil
}
