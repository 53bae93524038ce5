package router

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_directory/internal/app/gqlserver"
	"user_directory/internal/feature/usertable/domain/entity"
	tablehandler "user_directory/internal/feature/usertable/transport/handler"
	"user_directory/internal/feature/usertable/usecase"
	"user_directory/internal/platform/metrics"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

type staticFields struct{}

func (staticFields) QueryFields() graphql.Fields {
	return graphql.Fields{
		"ping": &graphql.Field{
			Type:    graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) { return "pong", nil },
		},
	}
}

func newAPIRouter(t *testing.T, db fakePinger, origin string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	schema, err := gqlserver.NewSchema(staticFields{})
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	return NewRouter(APIDeps{
		Logger:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
		GraphQL:       gqlserver.NewHandler(schema, collector),
		DB:            db,
		Metrics:       metrics.Handler(reg),
		Status:        collector,
		AllowedOrigin: origin,
	})
}

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	r := newAPIRouter(t, fakePinger{}, "http://localhost:3000")

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
		contains       string
	}{
		{name: "liveness", method: http.MethodGet, target: "/healthz", expectedStatus: http.StatusOK, contains: `"ok"`},
		{name: "readiness", method: http.MethodGet, target: "/readyz", expectedStatus: http.StatusOK, contains: `"ready"`},
		{name: "graphql post", method: http.MethodPost, target: "/graphql", body: `{"query":"{ ping }"}`, expectedStatus: http.StatusOK, contains: `"pong"`},
		{name: "graphql get", method: http.MethodGet, target: "/graphql?query=%7B+ping+%7D", expectedStatus: http.StatusOK, contains: `"pong"`},
		{name: "unknown route", method: http.MethodGet, target: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}

	// 上記のリクエストがメトリクスに反映されていること
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `user_directory_graphql_operations_total{operation="query",result="ok"} 2`)
	assert.Contains(t, w.Body.String(), `user_directory_http_status_total{status_code="404"} 1`)
}

func TestNewRouter_ReadinessFailure(t *testing.T) {
	t.Parallel()

	r := newAPIRouter(t, fakePinger{err: errors.New("db down")}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		origin       string
		reqOrigin    string
		expectHeader string
	}{
		{name: "configured origin is allowed", origin: "http://localhost:3000", reqOrigin: "http://localhost:3000", expectHeader: "http://localhost:3000"},
		{name: "other origin is rejected", origin: "http://localhost:3000", reqOrigin: "http://evil.example", expectHeader: ""},
		{name: "wildcard", origin: "*", reqOrigin: "http://any.example", expectHeader: "*"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newAPIRouter(t, fakePinger{}, tt.origin)
			req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
			req.Header.Set("Origin", tt.reqOrigin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

type stubTableUsecase struct{}

func (stubTableUsecase) Load(ctx context.Context, q usecase.Query) (*usecase.Page, error) {
	return &usecase.Page{CurrentPage: 1, Pages: 1}, nil
}

func (stubTableUsecase) Save(ctx context.Context, id string, d entity.Draft) (*entity.Row, error) {
	return nil, nil
}

func TestNewWebRouter(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	tmpl, err := tablehandler.LoadTemplates()
	require.NoError(t, err)
	r := NewWebRouter(slog.New(slog.NewJSONHandler(io.Discard, nil)), tmpl, tablehandler.NewTableHandler(stubTableUsecase{}))

	for _, target := range []string{"/", "/healthz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}
