// Package gql exposes the users feature as GraphQL fields.
package gql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/graphql-go/graphql"

	"user_directory/internal/feature/users/domain/entity"
	"user_directory/internal/feature/users/transport/gql/dto"
	"user_directory/internal/feature/users/usecase"
	"user_directory/internal/shared/ident"
)

// UserUsecase はユーザー結合ビューのユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (resolver), not the provider (usecase).
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	UpdateUser(ctx context.Context, in entity.UpdateUser) (*entity.User, error)
}

// UserType は結合行 `User { id, name, email, company, salary }` のGraphQL型です。
var UserType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"company": &graphql.Field{Type: graphql.String},
		"salary":  &graphql.Field{Type: graphql.Float},
	},
})

// UserResolver はusersフィーチャーのGraphQLリゾルバーです。
type UserResolver struct {
	uc UserUsecase
}

// NewUserResolver は新しい UserResolver を作成します。
func NewUserResolver(uc UserUsecase) *UserResolver {
	return &UserResolver{uc: uc}
}

// QueryFields はQueryルート型に追加するフィールド（users, user）を返します。
func (r *UserResolver) QueryFields() graphql.Fields {
	return graphql.Fields{
		"users": &graphql.Field{
			Type:    graphql.NewList(UserType),
			Resolve: r.Users,
		},
		"user": &graphql.Field{
			Type: UserType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.User,
		},
	}
}

// MutationFields はMutationルート型に追加するフィールド（updateUser）を返します。
func (r *UserResolver) MutationFields() graphql.Fields {
	return graphql.Fields{
		"updateUser": &graphql.Field{
			Type: UserType,
			Args: graphql.FieldConfigArgument{
				"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"email":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"company": &graphql.ArgumentConfig{Type: graphql.String},
				"salary":  &graphql.ArgumentConfig{Type: graphql.Float},
			},
			Resolve: r.UpdateUser,
		},
	}
}

// Users は全結合行を返します。
func (r *UserResolver) Users(p graphql.ResolveParams) (interface{}, error) {
	users, err := r.uc.ListUsers(p.Context)
	if err != nil {
		slog.ErrorContext(p.Context, "failed to list users", "error", err)
		return nil, err
	}
	out := make([]dto.User, 0, len(users))
	for _, u := range users {
		out = append(out, dto.FromEntity(u))
	}
	return out, nil
}

// User は指定IDの結合行を返します。該当行がない場合はnullを返します。
func (r *UserResolver) User(p graphql.ResolveParams) (interface{}, error) {
	id, ok := argID(p.Args)
	if !ok {
		return nil, nil
	}

	u, err := r.uc.GetUser(p.Context, id)
	if errors.Is(err, usecase.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(p.Context, "failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	out := dto.FromEntity(*u)
	return &out, nil
}

// UpdateUser は全フィールドを上書きし、再読込した結合行を返します。
// 雇用情報を持たないユーザーは更新されず、nullを返します。
func (r *UserResolver) UpdateUser(p graphql.ResolveParams) (interface{}, error) {
	id, ok := argID(p.Args)
	if !ok {
		return nil, nil
	}

	in := entity.UpdateUser{ID: id}
	in.Name, _ = p.Args["name"].(string)
	in.Email, _ = p.Args["email"].(string)
	if company, ok := p.Args["company"].(string); ok {
		in.Company = &company
	}
	if salary, ok := argFloat(p.Args["salary"]); ok {
		in.Salary = &salary
	}

	u, err := r.uc.UpdateUser(p.Context, in)
	if errors.Is(err, usecase.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(p.Context, "failed to update user", "user_id", id, "error", err)
		return nil, err
	}
	out := dto.FromEntity(*u)
	return &out, nil
}

func argID(args map[string]interface{}) (uint, bool) {
	raw, ok := args["id"].(string)
	if !ok {
		return 0, false
	}
	return ident.Parse(raw)
}

// argFloat はFloat引数を取り出します。リテラルの整数はintで渡されることがあります。
func argFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
