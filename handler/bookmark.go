package handler

import (
	"Mindshare/config"
	"Mindshare/middleware"
	"Mindshare/pkg/context"
	"Mindshare/pkg/response"
	"Mindshare/service"

	"github.com/gin-gonic/gin"
)

type Bookmark struct {
	BookmarkService service.IBookmarkService
	Config          *config.Config
}

func (h *Bookmark) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1", middleware.Identity())
	g.POST("/resources/:id/bookmark", context.Wrap(h.Add))
	g.DELETE("/resources/:id/bookmark", context.Wrap(h.Remove))
	g.GET("/resources/:id/bookmark", context.Wrap(h.Check))
	g.GET("/me/bookmarks", context.Wrap(h.List))
}

func (h *Bookmark) Add(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.BookmarkService.Bookmark(c.Request.Context(), uint64(uid), resourceID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Bookmark) Remove(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.BookmarkService.Unbookmark(c.Request.Context(), uint64(uid), resourceID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Bookmark) Check(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resourceID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	bookmarked, err := h.BookmarkService.IsBookmarked(c.Request.Context(), uint64(uid), resourceID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"bookmarked": bookmarked})
	return nil
}

func (h *Bookmark) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	limit, offset := parsePage(c)
	list, err := h.BookmarkService.ListForUser(c.Request.Context(), uint64(uid), limit, offset)
	if err != nil {
		return err
	}
	response.Success(c, list)
	return nil
}
