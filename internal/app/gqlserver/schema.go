// Package gqlserver assembles the GraphQL schema and serves it over HTTP.
package gqlserver

import (
	"github.com/graphql-go/graphql"

	employmentgql "user_directory/internal/feature/employment/transport/gql"
	usersgql "user_directory/internal/feature/users/transport/gql"
)

// FieldProvider はルート型にフィールドを提供するフィーチャーのリゾルバーです。
type FieldProvider interface {
	QueryFields() graphql.Fields
}

// MutationProvider はMutationルート型にフィールドを提供するリゾルバーです。
type MutationProvider interface {
	MutationFields() graphql.Fields
}

// UserWithEmpDetailsType はユーザーと雇用情報の組を表す型です。
// ルートフィールドからは参照されませんが、スキーマには宣言されます。
var UserWithEmpDetailsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserWithEmpDetails",
	Fields: graphql.Fields{
		"user":              &graphql.Field{Type: usersgql.UserType},
		"employmentDetails": &graphql.Field{Type: employmentgql.EmploymentDetailsType},
	},
})

// NewSchema は各フィーチャーのフィールドを結合してスキーマを構築します。
func NewSchema(providers ...FieldProvider) (graphql.Schema, error) {
	query := graphql.Fields{}
	mutation := graphql.Fields{}
	for _, p := range providers {
		for name, f := range p.QueryFields() {
			query[name] = f
		}
		if m, ok := p.(MutationProvider); ok {
			for name, f := range m.MutationFields() {
				mutation[name] = f
			}
		}
	}

	cfg := graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: query}),
		Types: []graphql.Type{UserWithEmpDetailsType},
	}
	if len(mutation) > 0 {
		cfg.Mutation = graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutation})
	}
	return graphql.NewSchema(cfg)
}
