package graph

import "github.com/graphql-go/graphql"

// NewSchema 构建GraphQL Schema
func NewSchema(r *Resolver) (graphql.Schema, error) {
	types := newSchemaTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(types),
		Mutation: r.mutationType(types),
	})
}
