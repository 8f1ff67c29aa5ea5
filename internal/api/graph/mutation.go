package graph

import (
	"github.com/graphql-go/graphql"

	"teamhub/internal/dto"
	"teamhub/internal/pkg/auth"
)

// mutationType 变更根
func (r *Resolver) mutationType(t *schemaTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			// login 校验凭证, 签发Token并写入HTTP-only Cookie
			"login": &graphql.Field{
				Type: graphql.NewNonNull(t.authPayload),
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					payload, err := r.authService.Login(&dto.LoginRequest{
						Username: stringArg(p, "username"),
						Password: stringArg(p, "password"),
					})
					if err != nil {
						return nil, err
					}
					if cookie, ok := TokenCookieFrom(p.Context); ok {
						cookie.Set(payload.Token)
					}
					return payload, nil
				},
			},

			// logout 用已过期的空值覆盖Cookie, 永远成功
			// Token本身无服务端吊销, 到期前仍然有效
			"logout": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if cookie, ok := TokenCookieFrom(p.Context); ok {
						cookie.Clear()
					}
					return true, nil
				},
			},

			// register 公开注册
			"register": &graphql.Field{
				Type: graphql.NewNonNull(t.user),
				Args: graphql.FieldConfigArgument{
					"username":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"registrationCode": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.authService.Register(&dto.RegisterRequest{
						Username:         stringArg(p, "username"),
						Email:            stringArg(p, "email"),
						Password:         stringArg(p, "password"),
						RegistrationCode: stringArg(p, "registrationCode"),
					})
				},
			},

			// updateProjectStatus 是否要求团队归属由策略开关决定
			"updateProjectStatus": &graphql.Field{
				Type: t.project,
				Args: graphql.FieldConfigArgument{
					"projectId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"status":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					identity, err := auth.RequireAuthenticated(p.Context)
					if err != nil {
						return nil, err
					}
					projectID, err := idArg(p, "projectId")
					if err != nil {
						return nil, err
					}
					return r.projectService.UpdateStatus(identity, &dto.UpdateProjectStatusRequest{
						ProjectID: projectID,
						Status:    stringArg(p, "status"),
					})
				},
			},

			// updateTeamStatus 仅限该团队成员
			"updateTeamStatus": &graphql.Field{
				Type: t.team,
				Args: graphql.FieldConfigArgument{
					"teamId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					identity, err := auth.RequireAuthenticated(p.Context)
					if err != nil {
						return nil, err
					}
					teamID, err := idArg(p, "teamId")
					if err != nil {
						return nil, err
					}
					return r.teamService.UpdateStatus(identity, &dto.UpdateTeamStatusRequest{
						TeamID: teamID,
						Status: stringArg(p, "status"),
					})
				},
			},

			// createUser 管理员创建用户
			"createUser": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"role":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return r.userService.Create(&dto.CreateUserRequest{
						Username: stringArg(p, "username"),
						Email:    stringArg(p, "email"),
						Password: stringArg(p, "password"),
						Role:     stringArg(p, "role"),
					})
				},
			},

			// updateUserRole 设置用户角色
			"updateUserRole": &graphql.Field{
				Type: t.user,
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"role":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					userID, err := idArg(p, "userId")
					if err != nil {
						return nil, err
					}
					return r.userService.UpdateRole(&dto.UpdateUserRoleRequest{
						UserID: userID,
						Role:   stringArg(p, "role"),
					})
				},
			},

			// createTeam 初始状态 Active
			"createTeam": &graphql.Field{
				Type: t.team,
				Args: graphql.FieldConfigArgument{
					"teamName":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"teamSlogan":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					return r.teamService.Create(&dto.CreateTeamRequest{
						Name:        stringArg(p, "teamName"),
						Description: stringArg(p, "description"),
						Slogan:      stringArg(p, "teamSlogan"),
					})
				},
			},

			// assignUsersToTeam 整体覆盖成员集合, 不做增量合并
			"assignUsersToTeam": &graphql.Field{
				Type: t.team,
				Args: graphql.FieldConfigArgument{
					"teamId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"userIds": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					teamID, err := idArg(p, "teamId")
					if err != nil {
						return nil, err
					}
					userIDs, err := parseIDList(p.Args["userIds"])
					if err != nil {
						return nil, err
					}
					return r.teamService.AssignUsers(&dto.AssignUsersRequest{
						TeamID:  teamID,
						UserIDs: userIDs,
					})
				},
			},

			// assignProjectToTeam 整体覆盖项目的团队集合
			"assignProjectToTeam": &graphql.Field{
				Type: t.project,
				Args: graphql.FieldConfigArgument{
					"projectId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"teamIds":   &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					projectID, err := idArg(p, "projectId")
					if err != nil {
						return nil, err
					}
					teamIDs, err := parseIDList(p.Args["teamIds"])
					if err != nil {
						return nil, err
					}
					return r.projectService.AssignTeams(&dto.AssignTeamsRequest{
						ProjectID: projectID,
						TeamIDs:   teamIDs,
					})
				},
			},

			// createProject 初始状态 Pending, startDate 必须可解析
			"createProject": &graphql.Field{
				Type: t.project,
				Args: graphql.FieldConfigArgument{
					"projectName": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"teamIds":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.ID))},
					"startDate":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"endDate":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, err := auth.RequireAdmin(p.Context); err != nil {
						return nil, err
					}
					teamIDs, err := parseIDList(p.Args["teamIds"])
					if err != nil {
						return nil, err
					}
					return r.projectService.Create(&dto.CreateProjectRequest{
						Name:        stringArg(p, "projectName"),
						Description: stringArg(p, "description"),
						TeamIDs:     teamIDs,
						StartDate:   stringArg(p, "startDate"),
						EndDate:     optionalStringArg(p, "endDate"),
					})
				},
			},
		},
	})
}
