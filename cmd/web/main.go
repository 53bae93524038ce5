package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"user_directory/internal/app/di"
	"user_directory/internal/app/router"
	"user_directory/internal/app/server"
	tablehandler "user_directory/internal/feature/usertable/transport/handler"
	tableusecase "user_directory/internal/feature/usertable/usecase"
	"user_directory/internal/platform/config"
	"user_directory/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("web exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.SetupDefault(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tmpl, err := tablehandler.LoadTemplates()
	if err != nil {
		return err
	}

	client := di.NewDirectoryClient(cfg)
	table := tablehandler.NewTableHandler(tableusecase.NewTableUsecase(client))
	r := router.NewWebRouter(log, tmpl, table)

	slog.Info("using GraphQL API", "url", cfg.APIURL)
	return server.Run(ctx, server.New(":"+cfg.WebPort, r), "web server")
}
