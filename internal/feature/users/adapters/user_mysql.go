// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"user_directory/internal/feature/users/domain/entity"
	"user_directory/internal/feature/users/usecase"
)

const (
	joinedColumns = "u.id, u.name, u.email, e.companyname AS company, e.salary"

	leftJoinEmployment  = "LEFT JOIN employmentdetails e ON u.id = e.id"
	innerJoinEmployment = "JOIN employmentdetails e ON u.id = e.id"

	// 両テーブルに行が存在する場合のみ更新する。EXISTS句はMySQL/PostgreSQL/SQLiteで共通に使える。
	updateUserRow = `UPDATE users SET name = ?, email = ?
		WHERE id = ? AND EXISTS (SELECT 1 FROM employmentdetails e WHERE e.id = users.id)`
	updateEmploymentRow = `UPDATE employmentdetails SET companyname = ?, salary = ?
		WHERE id = ? AND EXISTS (SELECT 1 FROM users u WHERE u.id = employmentdetails.id)`
)

// userMySQL はUserRepositoryインターフェースのGORM実装です。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

func (r *userMySQL) joined(ctx context.Context, join string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("users AS u").
		Select(joinedColumns).
		Joins(join)
}

// List は users LEFT JOIN employmentdetails の全行をid順に返します。
func (r *userMySQL) List(ctx context.Context) ([]entity.User, error) {
	var rows []joinedRow
	if err := r.joined(ctx, leftJoinEmployment).Order("u.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// FindByID はLEFT JOINで結合行を取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.findOne(ctx, leftJoinEmployment, id)
}

// FindEmployedByID はINNER JOINで結合行を取得します。
// 雇用情報のないユーザーもusecase.ErrUserNotFoundになります。
func (r *userMySQL) FindEmployedByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.findOne(ctx, innerJoinEmployment, id)
}

func (r *userMySQL) findOne(ctx context.Context, join string, id uint) (*entity.User, error) {
	var rows []joinedRow
	if err := r.joined(ctx, join).Where("u.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, usecase.ErrUserNotFound
	}
	u := rows[0].toEntity()
	return &u, nil
}

// Update はusersとemploymentdetailsの両方に行がある場合のみ全フィールドを上書きします。
// 2つのUPDATEは1つのトランザクションで実行され、どちらか一方だけが反映されることはありません。
// 戻り値は両テーブルで影響を受けた行数の合計です。
func (r *userMySQL) Update(ctx context.Context, in entity.UpdateUser) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(updateUserRow, in.Name, in.Email, in.ID)
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected

		res = tx.Exec(updateEmploymentRow, nullable(in.Company), nullable(in.Salary), in.ID)
		if res.Error != nil {
			return res.Error
		}
		affected += res.RowsAffected
		return nil
	})
	if err != nil {
		if code, ok := mysqlCode(err); ok {
			slog.ErrorContext(ctx, "mysql update failed", "user_id", in.ID, "mysql_code", code, "error", err)
		}
		return 0, err
	}
	return affected, nil
}

// mysqlCode はMySQLドライバーのエラー番号を取り出します。
func mysqlCode(err error) (uint16, bool) {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number, true
	}
	return 0, false
}

// nullable はnilポインタをSQLのNULLに、それ以外を値に変換します。
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
