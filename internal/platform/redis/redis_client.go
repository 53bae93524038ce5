// Package redis はキャッシュ用のRedisクライアント生成を提供します。
package redis

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"user_directory/internal/platform/config"
)

const pingTimeout = 3 * time.Second

// NewRedisClient は設定からRedisクライアントを生成し、接続を確認します。
// 接続できない場合はクライアントを閉じてエラーを返します。
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.RedisHost, cfg.RedisPort)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// 接続確認
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
