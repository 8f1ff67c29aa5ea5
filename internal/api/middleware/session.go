package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"teamhub/internal/model"
	"teamhub/internal/pkg/auth"
	"teamhub/internal/pkg/jwt"
	"teamhub/internal/pkg/logger"
	"teamhub/pkg/constants"
)

// SessionMiddleware 会话中间件
// 从Cookie取会话Token并验证, 将身份写入请求context
// 没有Cookie或Token无效一律按匿名放行, 授权失败由各操作自行返回
func SessionMiddleware(issuer *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(constants.TokenCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := issuer.Validate(token)
		if err != nil {
			logger.Warn("会话Token无效, 按匿名处理",
				zap.String("ip", c.ClientIP()),
				zap.Error(err),
			)
			c.Next()
			return
		}

		identity := &auth.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     model.Role(claims.Role),
		}
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}
