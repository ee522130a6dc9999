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

type Comment struct {
	CommentService service.ICommentService
	Config         *config.Config
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/resources/:id/comments", context.Wrap(h.List))

	g := r.Group("/v1/comments", middleware.Identity())
	g.POST("", context.Wrap(h.Create))
	g.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Comment) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	comment, err := h.CommentService.CreateComment(c.Request.Context(), uint64(uid), &req)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

func (h *Comment) List(c *gin.Context) error {
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	list, err := h.CommentService.ListComments(c.Request.Context(), resourceID)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.CommentService.DeleteComment(c.Request.Context(), uint64(uid), commentID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
