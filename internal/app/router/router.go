// Package router builds the gin engines for the API and UI processes.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"user_directory/internal/app/gqlserver"
	"user_directory/internal/platform/http/handler"
	"user_directory/internal/platform/middleware"
)

// APIDeps はAPIルーターが必要とする依存です。
type APIDeps struct {
	Logger        *slog.Logger
	GraphQL       *gqlserver.Handler
	DB            handler.Pinger
	Metrics       http.Handler
	Status        middleware.StatusRecorder
	AllowedOrigin string
}

// NewRouter はGraphQL APIのルーターを生成します。
func NewRouter(d APIDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(d.Logger, d.Status))

	// UIからのクロスオリジン呼び出しを許可
	if d.AllowedOrigin != "" {
		r.Use(cors.New(corsConfig(d.AllowedOrigin)))
	}

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(d.DB))

	// Prometheusスクレイプ
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}

	// 単一のGraphQLエンドポイント（認証なし）
	r.POST("/graphql", d.GraphQL.Serve)
	r.GET("/graphql", d.GraphQL.Serve)

	return r
}

func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	return cfg
}
