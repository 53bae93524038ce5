// Package directoryapi はユーザーディレクトリGraphQL APIのクライアントを提供します。
package directoryapi

import (
	"time"

	"user_directory/internal/platform/config"
)

// Config はGraphQL APIクライアントの設定を保持します。
type Config struct {
	URL        string        // GraphQLエンドポイント（例: "http://localhost:4000/graphql"）
	Timeout    time.Duration // HTTPリクエストタイムアウト
	RatePerSec float64       // 1秒あたりの最大リクエスト数。0以下で無制限
}

// ConfigFrom はアプリケーション設定からクライアント設定を取り出します。
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		URL:        cfg.APIURL,
		Timeout:    cfg.APITimeout,
		RatePerSec: cfg.APIRatePerSec,
	}
}
