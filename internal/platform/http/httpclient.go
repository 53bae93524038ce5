// Package http はGraphQL APIを呼び出すためのHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// defaultTimeout はタイムアウト未指定時に使用するリクエスト全体のタイムアウトです。
const defaultTimeout = 10 * time.Second

// NewHTTPClient はUIプロセスからGraphQL APIを呼び出すHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト
//   - MaxIdleConnsPerHost: 呼び出し先はAPIサーバー1台のみのため、ホスト単位の上限を広げる
//   - Client.Timeout: リクエスト全体のタイムアウト。0以下の場合は defaultTimeout
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        32,
		MaxIdleConnsPerHost: 32,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
