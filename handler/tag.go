package handler

import (
	"Mindshare/config"
	"Mindshare/pkg/context"
	"Mindshare/pkg/response"
	"Mindshare/service"

	"github.com/gin-gonic/gin"
)

type Tag struct {
	TagService service.ITagService
	Config     *config.Config
}

func (h *Tag) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/tags")
	g.GET("", context.Wrap(h.List))
}

func (h *Tag) List(c *gin.Context) error {
	tags, err := h.TagService.ListTags(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}
