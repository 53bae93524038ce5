// Package ratelimiter は外部呼び出しの頻度を制限します。
package ratelimiter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// ErrReservationFailed はトークンを予約できなかった場合に返されます。
var ErrReservationFailed = errors.New("rate limiter: reservation failed")

// Limiter は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type Limiter interface {
	WaitIfNeeded(ctx context.Context) error
}

// RateLimiter はトークンバケットで呼び出し頻度を制限します。複数goroutineから安全に利用できます。
type RateLimiter struct {
	limiter *rate.Limiter
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は1秒あたり perSec 回、最大 burst 回の連続呼び出しを許すRateLimiterを生成します。
// perSec が0以下の場合は制限しません。
func NewRateLimiter(perSec float64, burst int) *RateLimiter {
	limit := rate.Limit(perSec)
	if perSec <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, burst)}
}

// WaitIfNeeded は上限に達している場合、トークンが補充されるまで待機します。
// 待機中に ctx がキャンセルされた場合は予約を取り消してエラーを返します。
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) error {
	r := rl.limiter.Reserve()
	if !r.OK() {
		return ErrReservationFailed
	}
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}

	slog.InfoContext(ctx, "rate limit reached, waiting", "delay", delay)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
