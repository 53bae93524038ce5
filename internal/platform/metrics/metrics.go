// Package metrics はPrometheusメトリクスの収集と公開を提供します。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder はGraphQL操作とHTTPレスポンスを記録するインターフェースです。
type Recorder interface {
	RecordOperation(operation string, ok bool, duration time.Duration)
	RecordHTTPStatus(statusCode int)
}

// Collector はPrometheusメトリクスを収集する実装です。
type Collector struct {
	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	httpStatus *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録します。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_directory_graphql_operations_total",
			Help: "GraphQL operations by type and result",
		}, []string{"operation", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "user_directory_graphql_operation_seconds",
			Help:    "GraphQL operation latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_directory_http_status_total",
			Help: "HTTP responses by status code",
		}, []string{"status_code"}),
	}

	reg.MustRegister(c.operations, c.latency, c.httpStatus)
	return c
}

// operationLabels はoperationラベルとして許可する値です。
// クライアントが指定する操作名はラベルにせず、系列数を固定します。
var operationLabels = map[string]bool{"query": true, "mutation": true, "subscription": true}

// RecordOperation はGraphQL操作の結果とレイテンシを記録します。
// operation は操作の種類で、それ以外の値は "other" として集計します。
func (c *Collector) RecordOperation(operation string, ok bool, duration time.Duration) {
	if !operationLabels[operation] {
		operation = "other"
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	c.operations.WithLabelValues(operation, result).Inc()
	c.latency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordHTTPStatus はHTTPステータスコードを記録します。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返します。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
