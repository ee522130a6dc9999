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

type Resource struct {
	ResourceService service.IResourceService
	Config          *config.Config
}

func (h *Resource) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/resources")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
	g.GET("/slug/:slug", context.Wrap(h.GetBySlug))

	authorized := g.Group("", middleware.Identity())
	authorized.POST("", context.Wrap(h.Create))
	authorized.PUT("/:id", context.Wrap(h.Update))
	authorized.DELETE("/:id", context.Wrap(h.Delete))

	r.GET("/v1/me/resources", middleware.Identity(), context.Wrap(h.ListMine))
}

func (h *Resource) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	resource, err := h.ResourceService.CreateResource(c.Request.Context(), uint64(uid), &req)
	if err != nil {
		return err
	}
	response.Success(c, resource)
	return nil
}

func (h *Resource) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	resource, err := h.ResourceService.UpdateResource(c.Request.Context(), uint64(uid), resourceID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resource)
	return nil
}

func (h *Resource) Get(c *gin.Context) error {
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	resource, err := h.ResourceService.GetResource(c.Request.Context(), resourceID)
	if err != nil {
		return err
	}
	response.Success(c, resource)
	return nil
}

func (h *Resource) GetBySlug(c *gin.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.NewError(http.StatusBadRequest, "slug 无效")
	}
	resource, err := h.ResourceService.GetResourceBySlug(c.Request.Context(), slug)
	if err != nil {
		return err
	}
	response.Success(c, resource)
	return nil
}

func (h *Resource) List(c *gin.Context) error {
	limit, offset := parsePage(c)
	list, err := h.ResourceService.ListResources(c.Request.Context(), limit, offset)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Resource) ListMine(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	limit, offset := parsePage(c)
	list, err := h.ResourceService.ListMyResources(c.Request.Context(), uint64(uid), limit, offset)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}

func (h *Resource) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ResourceService.DeleteResource(c.Request.Context(), uint64(uid), resourceID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
