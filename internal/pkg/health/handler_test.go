package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-fare/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestDefaultBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.4.0")
	t.Setenv("GIT_COMMIT", "abc123")

	e := echo.New()
	e.GET("/ping", NewPingHandler("fare-service"))

	rec := serve(e, http.MethodGet, "/ping")

	require.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "fare-service", info.ServiceName)
	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.NotEmpty(t, info.Hostname)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints_NoService(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "fare-service", nil)

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		rec := serve(e, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}

	assert.Equal(t, http.StatusMethodNotAllowed, serve(e, http.MethodPost, "/health").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/nonexistent").Code)
}

func TestRegisterHealthEndpoints_Readiness(t *testing.T) {
	mr := miniredis.RunT(t)
	rc := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})}
	t.Cleanup(func() { rc.Close() })

	service := NewHealthService()
	service.AddChecker("redis", NewRedisHealthChecker(rc))
	service.AddChecker("postgres", NewPostgresHealthChecker(nil))
	service.AddChecker("nsq", NewNSQHealthChecker(nil))

	e := echo.New()
	RegisterHealthEndpoints(e, "fare-service", service)

	rec := serve(e, http.MethodGet, "/ready")
	require.Equal(t, http.StatusOK, rec.Code)
	var healthy HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &healthy))
	assert.Equal(t, StatusHealthy, healthy.Status)
	assert.Equal(t, "fare-service", healthy.Service)
	assert.Len(t, healthy.Dependencies, 3)

	mr.Close()

	rec = serve(e, http.MethodGet, "/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var unhealthy HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &unhealthy))
	assert.Equal(t, StatusUnhealthy, unhealthy.Status)
	assert.Equal(t, StatusUnhealthy, unhealthy.Dependencies["redis"].Status)
	assert.NotEmpty(t, unhealthy.Dependencies["redis"].Error)
	assert.Equal(t, StatusHealthy, unhealthy.Dependencies["postgres"].Status)
}

func TestHealthService_CheckerFunc(t *testing.T) {
	service := NewHealthService()
	service.AddChecker("ok", CheckerFunc(func(ctx context.Context) error { return nil }))
	service.AddChecker("broken", CheckerFunc(func(ctx context.Context) error { return assert.AnError }))

	response := service.CheckAllHealth(context.Background())

	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Equal(t, DependencyInfo{Status: StatusHealthy}, response.Dependencies["ok"])
	assert.Equal(t, DependencyInfo{Status: StatusUnhealthy, Error: assert.AnError.Error()}, response.Dependencies["broken"])
}
