// Package usecase implements the read operations for employment details.
package usecase

import (
	"context"
	"errors"

	"user_directory/internal/feature/employment/domain/entity"
)

// ErrEmploymentDetailNotFound is returned when no employmentdetails row has the requested ID.
var ErrEmploymentDetailNotFound = errors.New("employment detail not found")

// EmploymentRepository abstracts read access to the employmentdetails table.
type EmploymentRepository interface {
	List(ctx context.Context) ([]entity.EmploymentDetail, error)
	FindByID(ctx context.Context, id uint) (*entity.EmploymentDetail, error)
}

// EmploymentUsecase exposes employment details unchanged from the store.
type EmploymentUsecase struct {
	repo EmploymentRepository
}

// NewEmploymentUsecase creates a new EmploymentUsecase with the given repository.
func NewEmploymentUsecase(r EmploymentRepository) *EmploymentUsecase {
	return &EmploymentUsecase{repo: r}
}

// ListEmploymentDetails returns every employmentdetails row.
func (u *EmploymentUsecase) ListEmploymentDetails(ctx context.Context) ([]entity.EmploymentDetail, error) {
	return u.repo.List(ctx)
}

// GetEmploymentDetail returns the row for id, or ErrEmploymentDetailNotFound.
func (u *EmploymentUsecase) GetEmploymentDetail(ctx context.Context, id uint) (*entity.EmploymentDetail, error) {
	return u.repo.FindByID(ctx, id)
}
