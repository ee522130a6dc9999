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

type MindMap struct {
	MindMapService service.IMindMapService
	Config         *config.Config
}

func (h *MindMap) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/mindmaps")
	g.GET("/:id", middleware.OptionalIdentity(), context.Wrap(h.Get))

	authorized := g.Group("", middleware.Identity())
	authorized.POST("", context.Wrap(h.Create))
	authorized.GET("", context.Wrap(h.ListMine))
	authorized.PUT("/:id", context.Wrap(h.Update))
	authorized.DELETE("/:id", context.Wrap(h.Delete))

	nodes := r.Group("/v1/mindmap-nodes", middleware.Identity())
	nodes.POST("", context.Wrap(h.CreateNode))
	nodes.PUT("/:id", context.Wrap(h.UpdateNode))
	nodes.DELETE("/:id", context.Wrap(h.DeleteNode))
}

func (h *MindMap) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateMindMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	m, err := h.MindMapService.CreateMindMap(c.Request.Context(), uint64(uid), &req)
	if err != nil {
		return err
	}
	response.Success(c, m)
	return nil
}

func (h *MindMap) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	mapID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateMindMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	m, err := h.MindMapService.UpdateMindMap(c.Request.Context(), uint64(uid), mapID, &req)
	if err != nil {
		return err
	}
	response.Success(c, m)
	return nil
}

// Get 私有导图只有属主能看，未登录 uid 为 0
func (h *MindMap) Get(c *gin.Context) error {
	mapID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	uid, _ := context.GetUserID(c)
	detail, err := h.MindMapService.GetMindMap(c.Request.Context(), uint64(uid), mapID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *MindMap) ListMine(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	maps, err := h.MindMapService.ListForUser(c.Request.Context(), uint64(uid))
	if err != nil {
		return err
	}
	response.Success(c, maps)
	return nil
}

func (h *MindMap) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	mapID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.MindMapService.DeleteMindMap(c.Request.Context(), uint64(uid), mapID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *MindMap) CreateNode(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	node, err := h.MindMapService.CreateNode(c.Request.Context(), uint64(uid), &req)
	if err != nil {
		return err
	}
	response.Success(c, node)
	return nil
}

func (h *MindMap) UpdateNode(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	nodeID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误")
	}
	node, err := h.MindMapService.UpdateNode(c.Request.Context(), uint64(uid), nodeID, &req)
	if err != nil {
		return err
	}
	response.Success(c, node)
	return nil
}

func (h *MindMap) DeleteNode(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	nodeID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.MindMapService.DeleteNode(c.Request.Context(), uint64(uid), nodeID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
