// Package usecase implements loading and saving rows for the user table UI.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"user_directory/internal/feature/usertable/domain/entity"
)

// DirectoryClient はGraphQL APIへのアクセスを抽象化します。
// GetUser と UpdateUser は該当行がない場合 nil, nil を返します。
type DirectoryClient interface {
	ListUsers(ctx context.Context) ([]entity.Row, error)
	GetUser(ctx context.Context, id string) (*entity.Row, error)
	UpdateUser(ctx context.Context, in entity.UpdateInput) (*entity.Row, error)
}

// Query はテーブル表示の条件です。
type Query struct {
	Search entity.Search
	Sort   Column
	Desc   bool
	Page   int
}

// Page はテーブルに表示する1ページ分の行です。
type Page struct {
	Rows        []entity.Row
	Total       int
	CurrentPage int
	Pages       int
}

// TableUsecase はテーブル表示と保存を提供します。
type TableUsecase struct {
	client DirectoryClient
}

// NewTableUsecase は新しい TableUsecase を作成します。
func NewTableUsecase(c DirectoryClient) *TableUsecase {
	return &TableUsecase{client: c}
}

// Load は検索条件に従って行を取得し、絞り込み・ソート・ページングした結果を返します。
// IDが指定されている場合は単一取得を行い、Nameによる絞り込みは行いません。
func (u *TableUsecase) Load(ctx context.Context, q Query) (*Page, error) {
	rows, err := u.fetch(ctx, q.Search)
	if err != nil {
		return nil, err
	}

	rows = SortRows(rows, q.Sort, q.Desc)
	paged, current, pages := Paginate(rows, q.Page)
	return &Page{Rows: paged, Total: len(rows), CurrentPage: current, Pages: pages}, nil
}

func (u *TableUsecase) fetch(ctx context.Context, s entity.Search) ([]entity.Row, error) {
	if s.ByID() {
		row, err := u.client.GetUser(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return []entity.Row{}, nil
		}
		return []entity.Row{*row}, nil
	}

	rows, err := u.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByName(rows, s.Name), nil
}

// Save は編集中の入力を updateUser で保存します。
// 給与の入力は CoerceSalary に従って変換されます。
func (u *TableUsecase) Save(ctx context.Context, id string, d entity.Draft) (*entity.Row, error) {
	in := entity.UpdateInput{
		ID:      id,
		Name:    d.Name,
		Email:   d.Email,
		Company: CoerceCompany(d.Company),
		Salary:  CoerceSalary(d.Salary),
	}

	row, err := u.client.UpdateUser(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("save user %s: %w", id, err)
	}
	if row == nil {
		slog.InfoContext(ctx, "update returned no row", "user_id", id)
	}
	return row, nil
}
