package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"teamhub/internal/api/graph"
	"teamhub/internal/api/handler"
	"teamhub/internal/api/middleware"
	"teamhub/internal/pkg/config"
	"teamhub/internal/pkg/jwt"
	"teamhub/internal/repository"
	"teamhub/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	issuer := jwt.NewIssuer(&cfg.Auth.JWT)

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(&cfg.CORS))
	r.Use(middleware.SessionMiddleware(issuer))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// 初始化Service
	authService := service.NewAuthService(&cfg.Auth, issuer, userRepo)
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo, userRepo)
	projectService := service.NewProjectService(&cfg.Policy, projectRepo, teamRepo, userRepo)

	// 构建GraphQL Schema
	resolver := graph.NewResolver(authService, userService, teamService, projectService)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	graphqlHandler := handler.NewGraphQLHandler(schema, issuer, cfg)

	// 单端点, 兼容两种常见路径
	r.POST("/", graphqlHandler.Handle)
	r.POST("/graphql", graphqlHandler.Handle)

	return r, nil
}
