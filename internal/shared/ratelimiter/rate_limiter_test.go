package ratelimiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewRateLimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		perSec    float64
		burst     int
		wantBurst int
		wantInf   bool
	}{
		{name: "configured values", perSec: 5, burst: 3, wantBurst: 3},
		{name: "zero rate disables limiting", perSec: 0, burst: 1, wantBurst: 1, wantInf: true},
		{name: "burst is at least one", perSec: 1, burst: 0, wantBurst: 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := NewRateLimiter(tt.perSec, tt.burst)
			assert.Equal(t, tt.wantBurst, rl.limiter.Burst())
			if tt.wantInf {
				assert.Equal(t, rate.Inf, rl.limiter.Limit())
			}
		})
	}
}

func TestRateLimiter_WaitIfNeeded_WithinBurst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 3)
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, rl.WaitIfNeeded(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond, "calls within burst should not wait")
}

func TestRateLimiter_WaitIfNeeded_Waits(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(20, 1)
	require.NoError(t, rl.WaitIfNeeded(context.Background()))

	start := time.Now()
	require.NoError(t, rl.WaitIfNeeded(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond, "second call should wait for a token")
}

func TestRateLimiter_WaitIfNeeded_ContextCanceled(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.1, 1)
	require.NoError(t, rl.WaitIfNeeded(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rl.WaitIfNeeded(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, 1)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, rl.WaitIfNeeded(context.Background()))
		}()
	}
	wg.Wait()
}
