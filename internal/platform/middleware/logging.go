package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusRecorder はレスポンスステータスを記録する先です。nilの場合は記録しません。
type StatusRecorder interface {
	RecordHTTPStatus(statusCode int)
}

// Logging はリクエストごとにJSON構造化ログを出力します。
// ステータスコードに応じてログレベルを変えます。
func Logging(logger *slog.Logger, rec StatusRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if rec != nil {
			rec.RecordHTTPStatus(status)
		}

		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Request.Context(), level, "http_request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
			slog.String("request_id", GetRequestID(c)),
			slog.String("remote_addr", c.ClientIP()),
		)
	}
}
