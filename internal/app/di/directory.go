package di

import (
	"user_directory/internal/platform/config"
	"user_directory/internal/platform/externalapi/directoryapi"
	infrahttp "user_directory/internal/platform/http"
	"user_directory/internal/shared/ratelimiter"
)

// NewDirectoryClient creates a fully configured GraphQL API client with HTTP client and rate limiter.
func NewDirectoryClient(cfg *config.Config) *directoryapi.Client {
	apiCfg := directoryapi.ConfigFrom(cfg)
	httpClient := infrahttp.NewHTTPClient(apiCfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(apiCfg.RatePerSec, burstFor(apiCfg.RatePerSec))
	return directoryapi.NewClient(apiCfg, httpClient, limiter)
}

// burstFor は1秒分のリクエストを連続で許可します。
func burstFor(perSec float64) int {
	if perSec < 1 {
		return 1
	}
	return int(perSec)
}
