package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamhub/internal/pkg/config"
)

// CORSMiddleware 跨域中间件
// 会话走Cookie, 必须回显固定来源并允许携带凭证, 不能用通配符
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowOrigin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
