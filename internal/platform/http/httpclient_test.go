package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		timeout         time.Duration
		expectedTimeout time.Duration
	}{
		{name: "configured timeout", timeout: 3 * time.Second, expectedTimeout: 3 * time.Second},
		{name: "zero uses default", timeout: 0, expectedTimeout: defaultTimeout},
		{name: "negative uses default", timeout: -time.Second, expectedTimeout: defaultTimeout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewHTTPClient(tt.timeout)
			assert.Equal(t, tt.expectedTimeout, c.Timeout)

			tr, ok := c.Transport.(*http.Transport)
			require.True(t, ok)
			assert.Equal(t, 32, tr.MaxIdleConnsPerHost)
			assert.NotNil(t, tr.Proxy)
		})
	}
}
