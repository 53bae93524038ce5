package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	redisv9 "github.com/redis/go-redis/v9"

	"user_directory/internal/app/di"
	"user_directory/internal/app/gqlserver"
	"user_directory/internal/app/router"
	"user_directory/internal/app/server"
	employmentadapters "user_directory/internal/feature/employment/adapters"
	employmentgql "user_directory/internal/feature/employment/transport/gql"
	employmentusecase "user_directory/internal/feature/employment/usecase"
	usersgql "user_directory/internal/feature/users/transport/gql"
	usersusecase "user_directory/internal/feature/users/usecase"
	"user_directory/internal/platform/config"
	infradb "user_directory/internal/platform/db"
	"user_directory/internal/platform/logger"
	"user_directory/internal/platform/metrics"
	infraredis "user_directory/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env はローカル開発用。存在しなくてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.SetupDefault(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Redis
	var rdb *redisv9.Client
	if cfg.RedisEnabled() {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg); err != nil {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, db, cfg.CacheTTL)
	employmentRepo := employmentadapters.NewEmploymentRepository(db)

	// Usecase
	usersUC := usersusecase.NewUserUsecase(userRepo)
	employmentUC := employmentusecase.NewEmploymentUsecase(employmentRepo)

	// GraphQL
	schema, err := gqlserver.NewSchema(
		usersgql.NewUserResolver(usersUC),
		employmentgql.NewEmploymentResolver(employmentUC),
	)
	if err != nil {
		return err
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// ルータ生成
	r := router.NewRouter(router.APIDeps{
		Logger:        log,
		GraphQL:       gqlserver.NewHandler(schema, collector),
		DB:            sqlDB,
		Metrics:       metrics.Handler(reg),
		Status:        collector,
		AllowedOrigin: cfg.CORSAllowedOrigin,
	})

	return server.Run(ctx, server.New(":"+cfg.ServerPort, r), "API server")
}
