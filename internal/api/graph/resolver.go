package graph

import (
	"strconv"
	"time"

	"github.com/graphql-go/graphql"

	"teamhub/internal/service"
	pkgErrors "teamhub/pkg/errors"
)

// Resolver 聚合全部操作依赖的服务, 每个GraphQL字段解析器都挂在它上面
type Resolver struct {
	authService    service.AuthService
	userService    service.UserService
	teamService    service.TeamService
	projectService service.ProjectService
}

func NewResolver(
	authService service.AuthService,
	userService service.UserService,
	teamService service.TeamService,
	projectService service.ProjectService,
) *Resolver {
	return &Resolver{
		authService:    authService,
		userService:    userService,
		teamService:    teamService,
		projectService: projectService,
	}
}

// parseID GraphQL ID → int64
func parseID(value interface{}) (int64, error) {
	switch v := value.(type) {
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, pkgErrors.New(pkgErrors.CodeBadUserInput, "Invalid id")
		}
		return id, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return int64(v), nil
	default:
		return 0, pkgErrors.New(pkgErrors.CodeBadUserInput, "Invalid id")
	}
}

// parseIDList GraphQL [ID!] → []int64, 缺省视为空列表
func parseIDList(value interface{}) ([]int64, error) {
	if value == nil {
		return []int64{}, nil
	}
	raw, ok := value.([]interface{})
	if !ok {
		return nil, pkgErrors.New(pkgErrors.CodeBadUserInput, "Invalid id list")
	}
	ids := make([]int64, 0, len(raw))
	for _, item := range raw {
		id, err := parseID(item)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// idArg 必填ID参数
func idArg(p graphql.ResolveParams, name string) (int64, error) {
	return parseID(p.Args[name])
}

// optionalIDArg 可选ID参数, 缺省返回nil
func optionalIDArg(p graphql.ResolveParams, name string) (*int64, error) {
	value, ok := p.Args[name]
	if !ok || value == nil {
		return nil, nil
	}
	id, err := parseID(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// stringArg 字符串参数, 缺省返回空串
func stringArg(p graphql.ResolveParams, name string) string {
	if value, ok := p.Args[name].(string); ok {
		return value
	}
	return ""
}

// optionalStringArg 可选字符串参数
func optionalStringArg(p graphql.ResolveParams, name string) *string {
	if value, ok := p.Args[name].(string); ok {
		return &value
	}
	return nil
}

// formatTime 时间字段统一输出RFC3339
func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
