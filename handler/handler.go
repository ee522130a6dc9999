package handler

import (
	"net/http"
	"strconv"

	"Mindshare/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径里的数字ID
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, name+" 无效")
	}
	return id, nil
}

// parsePage 解析分页参数，limit 默认 20 最大 100
func parsePage(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
