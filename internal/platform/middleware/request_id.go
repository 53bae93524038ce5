// Package middleware はGinルーター共通のミドルウェアを提供します。
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader はリクエストIDを受け渡すヘッダー名です。
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID はリクエストごとにIDを払い出し、コンテキストとレスポンスヘッダーに設定します。
// クライアントがIDを送ってきた場合はそれを引き継ぎます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID はコンテキストに設定されたリクエストIDを返します。
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
