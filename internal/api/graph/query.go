package graph

import (
	"github.com/graphql-go/graphql"

	"teamhub/internal/pkg/auth"
)

// queryType 查询根
// 每个操作入口恰好调用一次授权检查: RequireAuthenticated 或 RequireAdmin
func (r *Resolver) queryType(t *schemaTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			// me 当前用户
			"me": &graphql.Field{
				Type: t.user,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					identity, err := auth.RequireAuthenticated(p.Context)
					if err != nil {
						return nil, err
					}
					return r.userService.GetByID(identity.UserID)
				},
			},

			// viewTeamDetails 团队详情, 展开成员与项目
			"viewTeamDetails": &graphql.Field{
				Type: t.team,
				Args: graphql.FieldConfigArgument{
					"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAuthenticated(p.Context); err != nil {
						return nil, err
					}
					teamID, err := idArg(p, "teamId")
					if err != nil {
						return nil, err
					}
					return r.teamService.GetByID(teamID)
				},
			},

			// viewAssignedProjects 所属团队名下的项目
			// userId 缺省为调用者自身; 查看他人需管理员
			"viewAssignedProjects": &graphql.Field{
				Type: graphql.NewList(t.project),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.ID},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					identity, err := auth.RequireAuthenticated(p.Context)
					if err != nil {
						return nil, err
					}
					userID, err := optionalIDArg(p, "userId")
					if err != nil {
						return nil, err
					}
					return r.projectService.ListAssigned(identity, userID)
				},
			},

			// viewMyTeams 调用者所属团队, 含嵌套项目
			"viewMyTeams": &graphql.Field{
				Type: graphql.NewList(t.team),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					identity, err := auth.RequireAuthenticated(p.Context)
					if err != nil {
						return nil, err
					}
					return r.teamService.ListByMember(identity.UserID)
				},
			},

			// viewUsers 全部用户
			"viewUsers": &graphql.Field{
				Type: graphql.NewList(t.user),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return r.userService.List()
				},
			},

			// listTeams 全部团队, 展开关联
			"listTeams": &graphql.Field{
				Type: graphql.NewList(t.team),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return r.teamService.ListAll()
				},
			},

			// listProjects 全部项目, 展开关联
			"listProjects": &graphql.Field{
				Type: graphql.NewList(t.project),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return r.projectService.ListAll()
				},
			},

			// listMembers 团队成员列表
			"listMembers": &graphql.Field{
				Type: graphql.NewList(t.user),
				Args: graphql.FieldConfigArgument{
					"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					teamID, err := idArg(p, "teamId")
					if err != nil {
						return nil, err
					}
					return r.teamService.ListMembers(teamID)
				},
			},
		},
	})
}
