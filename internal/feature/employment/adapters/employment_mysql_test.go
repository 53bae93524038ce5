package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"user_directory/internal/feature/employment/usecase"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// インメモリDBは接続ごとに別物になるため、接続を1本に固定する
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&EmploymentDetailModel{}), "failed to migrate table")
	return db
}

func seedDetail(t *testing.T, db *gorm.DB, id uint, company *string, salary *float64) {
	t.Helper()
	require.NoError(t, db.Create(&EmploymentDetailModel{ID: id, CompanyName: company, Salary: salary}).Error)
}

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNewEmploymentRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewEmploymentRepository(db)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

func TestEmploymentMySQL_List(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewEmploymentRepository(db)

	seedDetail(t, db, 3, nil, nil)
	seedDetail(t, db, 1, strPtr("Acme"), floatPtr(50000))
	seedDetail(t, db, 2, strPtr("Globex"), nil)

	details, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, details, 3)

	assert.Equal(t, uint(1), details[0].ID)
	assert.Equal(t, "Acme", *details[0].CompanyName)
	assert.Equal(t, 50000.0, *details[0].Salary)

	assert.Equal(t, uint(2), details[1].ID)
	assert.Nil(t, details[1].Salary)

	assert.Equal(t, uint(3), details[2].ID)
	assert.Nil(t, details[2].CompanyName)
}

func TestEmploymentMySQL_List_Empty(t *testing.T) {
	t.Parallel()

	repo := NewEmploymentRepository(setupTestDB(t))

	details, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestEmploymentMySQL_FindByID(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewEmploymentRepository(db)
	seedDetail(t, db, 1, strPtr("Acme"), floatPtr(50000))

	tests := []struct {
		name    string
		id      uint
		wantErr error
	}{
		{name: "success: existing row", id: 1},
		{name: "failure: missing row", id: 2, wantErr: usecase.ErrEmploymentDetailNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, got.ID)
			assert.Equal(t, "Acme", *got.CompanyName)
		})
	}
}
