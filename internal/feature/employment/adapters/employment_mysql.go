// Package adapters はemploymentフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"user_directory/internal/feature/employment/domain/entity"
	"user_directory/internal/feature/employment/usecase"
)

// employmentMySQL はEmploymentRepositoryインターフェースのGORM実装です。
type employmentMySQL struct {
	db *gorm.DB
}

var _ usecase.EmploymentRepository = (*employmentMySQL)(nil)

// NewEmploymentRepository は指定されたDB接続でemploymentMySQLの新しいインスタンスを生成します。
func NewEmploymentRepository(db *gorm.DB) *employmentMySQL {
	return &employmentMySQL{db: db}
}

// List はid順にすべての雇用情報を返します。
func (r *employmentMySQL) List(ctx context.Context) ([]entity.EmploymentDetail, error) {
	var rows []EmploymentDetailModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.EmploymentDetail, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// FindByID はIDで雇用情報を取得します。
// 存在しない場合、usecase.ErrEmploymentDetailNotFoundを返します。
func (r *employmentMySQL) FindByID(ctx context.Context, id uint) (*entity.EmploymentDetail, error) {
	var m EmploymentDetailModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEmploymentDetailNotFound
		}
		return nil, err
	}
	e := m.toEntity()
	return &e, nil
}
