package graph

import (
	"github.com/graphql-go/graphql"

	"teamhub/internal/dto"
	"teamhub/internal/model"
)

// GraphQL 输出类型
// Team↔Project / Team↔User 互相引用, 用 FieldsThunk 延迟求值打破环
type schemaTypes struct {
	user        *graphql.Object
	authPayload *graphql.Object
	team        *graphql.Object
	project     *graphql.Object
}

func newSchemaTypes() *schemaTypes {
	t := &schemaTypes{}

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).ID, nil
				},
			},
			"username": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).Username, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*model.User).Email, nil
				},
			},
			"role": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(*model.User).Role), nil
				},
			},
		},
	})

	t.authPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*dto.AuthPayload).Token, nil
				},
			},
			"user": &graphql.Field{
				Type: graphql.NewNonNull(t.user),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*dto.AuthPayload).User, nil
				},
			},
		},
	})

	t.team = graphql.NewObject(graphql.ObjectConfig{
		Name: "Team",
		Fields: (graphql.FieldsThunk)(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Team).ID, nil
					},
				},
				"teamName": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Team).Name, nil
					},
				},
				"description": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Team).Description, nil
					},
				},
				"teamSlogan": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Team).Slogan, nil
					},
				},
				"createdDate": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return formatTime(p.Source.(*model.Team).CreatedAt), nil
					},
				},
				"status": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return string(p.Source.(*model.Team).Status), nil
					},
				},
				"members": &graphql.Field{
					Type: graphql.NewList(t.user),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Team).Members, nil
					},
				},
				"projects": &graphql.Field{
					Type: graphql.NewList(t.project),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Team).Projects, nil
					},
				},
			}
		}),
	})

	t.project = graphql.NewObject(graphql.ObjectConfig{
		Name: "Project",
		Fields: (graphql.FieldsThunk)(func() graphql.Fields {
			return graphql.Fields{
				"id": &graphql.Field{
					Type: graphql.NewNonNull(graphql.ID),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Project).ID, nil
					},
				},
				"projectName": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Project).Name, nil
					},
				},
				"description": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Project).Description, nil
					},
				},
				"status": &graphql.Field{
					Type: graphql.NewNonNull(graphql.String),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return string(p.Source.(*model.Project).Status), nil
					},
				},
				"startDate": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return formatTime(p.Source.(*model.Project).StartDate), nil
					},
				},
				"endDate": &graphql.Field{
					Type: graphql.String,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						endDate := p.Source.(*model.Project).EndDate
						if endDate == nil {
							return nil, nil
						}
						return formatTime(*endDate), nil
					},
				},
				"teams": &graphql.Field{
					Type: graphql.NewList(t.team),
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return p.Source.(*model.Project).Teams, nil
					},
				},
			}
		}),
	})

	return t
}
