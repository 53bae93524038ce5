// Package gql exposes the employment feature as GraphQL fields.
package gql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/graphql-go/graphql"

	"user_directory/internal/feature/employment/domain/entity"
	"user_directory/internal/feature/employment/transport/gql/dto"
	"user_directory/internal/feature/employment/usecase"
	"user_directory/internal/shared/ident"
)

// EmploymentUsecase は雇用情報のユースケースのインターフェースです。
type EmploymentUsecase interface {
	ListEmploymentDetails(ctx context.Context) ([]entity.EmploymentDetail, error)
	GetEmploymentDetail(ctx context.Context, id uint) (*entity.EmploymentDetail, error)
}

// EmploymentDetailsType は `EmploymentDetails { id, companyname, salary }` のGraphQL型です。
var EmploymentDetailsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EmploymentDetails",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"companyname": &graphql.Field{Type: graphql.String},
		"salary":      &graphql.Field{Type: graphql.Float},
	},
})

// EmploymentResolver はemploymentフィーチャーのGraphQLリゾルバーです。
type EmploymentResolver struct {
	uc EmploymentUsecase
}

// NewEmploymentResolver は新しい EmploymentResolver を作成します。
func NewEmploymentResolver(uc EmploymentUsecase) *EmploymentResolver {
	return &EmploymentResolver{uc: uc}
}

// QueryFields はQueryルート型に追加するフィールドを返します。
func (r *EmploymentResolver) QueryFields() graphql.Fields {
	return graphql.Fields{
		"employmentdetails": &graphql.Field{
			Type:    graphql.NewList(EmploymentDetailsType),
			Resolve: r.EmploymentDetails,
		},
		"employmentdetail": &graphql.Field{
			Type: EmploymentDetailsType,
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
			},
			Resolve: r.EmploymentDetail,
		},
	}
}

// EmploymentDetails は全行を返します。
func (r *EmploymentResolver) EmploymentDetails(p graphql.ResolveParams) (interface{}, error) {
	details, err := r.uc.ListEmploymentDetails(p.Context)
	if err != nil {
		slog.ErrorContext(p.Context, "failed to list employment details", "error", err)
		return nil, err
	}
	out := make([]dto.EmploymentDetails, 0, len(details))
	for _, d := range details {
		out = append(out, dto.FromEntity(d))
	}
	return out, nil
}

// EmploymentDetail は指定IDの行を返します。該当行がない場合はnullを返します。
func (r *EmploymentResolver) EmploymentDetail(p graphql.ResolveParams) (interface{}, error) {
	raw, _ := p.Args["id"].(string)
	id, ok := ident.Parse(raw)
	if !ok {
		return nil, nil
	}

	d, err := r.uc.GetEmploymentDetail(p.Context, id)
	if errors.Is(err, usecase.ErrEmploymentDetailNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(p.Context, "failed to get employment detail", "id", id, "error", err)
		return nil, err
	}
	out := dto.FromEntity(*d)
	return &out, nil
}
