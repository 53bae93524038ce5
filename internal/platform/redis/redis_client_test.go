package redis

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_directory/internal/platform/config"
)

// TestNewRedisClient_Unreachable は接続できないアドレスでエラーを返すことを検証します。
func TestNewRedisClient_Unreachable(t *testing.T) {
	t.Parallel()

	// 空きポートを確保してすぐ閉じ、接続拒否されるアドレスを作る
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	rdb, err := NewRedisClient(context.Background(), &config.Config{RedisHost: host, RedisPort: port})
	assert.Error(t, err)
	assert.Nil(t, rdb)
}
