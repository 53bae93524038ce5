package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"user_directory/internal/feature/users/domain/entity"
)

// UserRepository はユーザー結合ビューの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// List は users LEFT JOIN employmentdetails の全行を返します。
	List(ctx context.Context) ([]entity.User, error)

	// FindByID は指定IDの結合行を LEFT JOIN で取得します。
	// 行が存在しない場合、ErrUserNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update は両テーブルに行が存在する場合のみ全フィールドを上書きし、影響を受けた行数を返します。
	Update(ctx context.Context, in entity.UpdateUser) (int64, error)

	// FindEmployedByID は指定IDの結合行を INNER JOIN で取得します。
	// 雇用情報がない場合も ErrUserNotFound を返します。
	FindEmployedByID(ctx context.Context, id uint) (*entity.User, error)
}

// UserUsecase provides the read and update operations over the combined user view.
type UserUsecase struct {
	repo UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(r UserRepository) *UserUsecase {
	return &UserUsecase{repo: r}
}

// ListUsers returns every combined row without filtering or pagination.
func (u *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.repo.List(ctx)
}

// GetUser returns the combined row for id, or ErrUserNotFound.
func (u *UserUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.repo.FindByID(ctx, id)
}

// UpdateUser overwrites name, email, company and salary, then re-reads the row.
// A user without an employment row is left untouched and ErrUserNotFound is
// returned from the re-read.
func (u *UserUsecase) UpdateUser(ctx context.Context, in entity.UpdateUser) (*entity.User, error) {
	affected, err := u.repo.Update(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", in.ID, err)
	}
	if affected == 0 {
		slog.InfoContext(ctx, "update matched no joined row", "user_id", in.ID)
	}
	return u.repo.FindEmployedByID(ctx, in.ID)
}
