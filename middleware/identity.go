package middleware

import (
	"net/http"
	"strconv"

	"Mindshare/pkg/response"

	"github.com/gin-gonic/gin"
)

// Identity 从上游网关注入的请求头里取当前用户
// 认证在网关完成，这里只信任 X-User-ID
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		if raw == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少用户身份")
			return
		}

		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || uid <= 0 {
			response.Abort(c, http.StatusUnauthorized, "用户身份无效")
			return
		}

		c.Set("user_id", uid)
		c.Next()
	}
}

// OptionalIdentity 公共读接口使用，未登录也放行
func OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader("X-User-ID"); raw != "" {
			if uid, err := strconv.ParseInt(raw, 10, 64); err == nil && uid > 0 {
				c.Set("user_id", uid)
			}
		}
		c.Next()
	}
}
