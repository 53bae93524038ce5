// Package db はGORMによるデータベース接続とマイグレーションを提供します。
package db

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-sql-driver/mysql"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	employmentadapters "user_directory/internal/feature/employment/adapters"
	useradapters "user_directory/internal/feature/users/adapters"
	"user_directory/internal/platform/config"
)

const defaultRetryInterval = 3 * time.Second

// Opener はDSNからgorm.DBを開く関数です。テストで差し替えられます。
type Opener func(dsn string) (*gorm.DB, error)

// OpenDB は設定に従ってDBへ接続し、必要であればマイグレーションを実行します。
// 接続は cfg.ConnectTimeout まで再試行されます。
func OpenDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := BuildDSN(cfg)
	db, err := ConnectWithRetry(dsn, cfg.ConnectTimeout, defaultRetryInterval, OpenerFor(cfg.Driver))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	if cfg.Driver == "sqlite" && cfg.Path == ":memory:" {
		// インメモリDBは接続ごとに別物になる
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	slog.Info("database connected", "driver", cfg.Driver)
	return db, nil
}

// Migrate はusersとemploymentdetailsテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&useradapters.UserModel{},
		&employmentadapters.EmploymentDetailModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// BuildDSN はドライバーごとの接続文字列を生成します。
func BuildDSN(cfg config.DBConfig) string {
	switch cfg.Driver {
	case "sqlite":
		if cfg.Path == ":memory:" {
			return cfg.Path
		}
		return filepath.Clean(cfg.Path)
	case "postgres":
		host := cfg.Host
		if cfg.InstanceName != "" {
			host = "/cloudsql/" + cfg.InstanceName
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	default:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.DBName = cfg.Name
		if cfg.InstanceName != "" {
			mc.Net = "unix"
			mc.Addr = "/cloudsql/" + cfg.InstanceName
		} else {
			mc.Net = "tcp"
			mc.Addr = cfg.Host + ":" + cfg.Port
		}
		mc.ParseTime = true
		mc.Loc = time.Local
		// 値が変わらない行も影響行数に含める
		mc.ClientFoundRows = true
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN()
	}
}

// OpenerFor はドライバー名に対応するOpenerを返します。
func OpenerFor(driver string) Opener {
	return func(dsn string) (*gorm.DB, error) {
		var dialector gorm.Dialector
		switch driver {
		case "sqlite":
			dialector = sqlite.Open(dsn)
		case "postgres":
			dialector = postgres.Open(dsn)
		default:
			dialector = gmysql.Open(dsn)
		}
		return gorm.Open(dialector, &gorm.Config{})
	}
}

// ConnectWithRetry はtimeoutに達するまでinterval間隔で接続を再試行します。
func ConnectWithRetry(dsn string, timeout, interval time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", interval)
		time.Sleep(interval)
	}
}
