package router

import (
	"html/template"
	"log/slog"

	"github.com/gin-gonic/gin"

	tablehandler "user_directory/internal/feature/usertable/transport/handler"
	"user_directory/internal/platform/http/handler"
	"user_directory/internal/platform/middleware"
)

// NewWebRouter はユーザーテーブル画面のルーターを生成します。
func NewWebRouter(logger *slog.Logger, tmpl *template.Template, table *tablehandler.TableHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger, nil))
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", handler.Health)

	// テーブル表示（検索・ソート・ページング・編集行の指定はクエリパラメータ）
	r.GET("/", table.Index)
	// 保存後はテーブルへリダイレクトして再取得
	r.POST("/users/:id", table.Save)

	return r
}
