package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"teamhub/internal/api/graph"
	"teamhub/internal/pkg/config"
	"teamhub/internal/pkg/jwt"
	"teamhub/internal/pkg/logger"
	"teamhub/pkg/constants"
)

// GraphQLHandler GraphQL入口Handler, 单端点承载全部操作
type GraphQLHandler struct {
	schema graphql.Schema
	issuer *jwt.Issuer
	cfg    *config.Config
}

func NewGraphQLHandler(schema graphql.Schema, issuer *jwt.Issuer, cfg *config.Config) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
		issuer: issuer,
		cfg:    cfg,
	}
}

// graphqlRequest 标准GraphQL POST请求体
type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handle 执行GraphQL请求
// 操作级错误进入响应的errors数组, HTTP状态恒为200
func (h *GraphQLHandler) Handle(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []gin.H{{"message": "Invalid request body"}},
		})
		return
	}

	// 身份已由会话中间件写入请求context, 这里再挂上Cookie写回通道
	ctx := graph.WithTokenCookie(c.Request.Context(), h.sessionCookie(c))

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	if len(result.Errors) > 0 {
		logger.Warn("GraphQL执行出错",
			zap.String("operation", req.OperationName),
			zap.Any("errors", result.Errors),
		)
	}

	c.JSON(http.StatusOK, result)
}

// sessionCookie 把会话Cookie的写入能力封装给resolver
type sessionCookie struct {
	c      *gin.Context
	maxAge int
	secure bool
}

func (h *GraphQLHandler) sessionCookie(c *gin.Context) *sessionCookie {
	return &sessionCookie{
		c:      c,
		maxAge: int(h.issuer.Expire().Seconds()),
		secure: h.cfg.Server.IsProduction(),
	}
}

func (s *sessionCookie) Set(token string) {
	s.c.SetSameSite(http.SameSiteStrictMode)
	s.c.SetCookie(constants.TokenCookieName, token, s.maxAge, "/", "", s.secure, true)
}

func (s *sessionCookie) Clear() {
	s.c.SetSameSite(http.SameSiteStrictMode)
	s.c.SetCookie(constants.TokenCookieName, "", -1, "/", "", s.secure, true)
}
