package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*logger.AppLogger, *bytes.Buffer) {
	t.Helper()
	l, err := logger.NewAppLogger(logger.Config{Level: "debug", Service: "fare-service"})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	l.Logger.SetOutput(buf)
	return l, buf
}

func TestPanicRecoveryWithLogger(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		userID       interface{}
		expectInLogs []string
	}{
		{
			name:         "string panic",
			panicValue:   "test panic message",
			expectInLogs: []string{"test panic message", "stack_trace", "anonymous"},
		},
		{
			name:         "error panic",
			panicValue:   errors.New("test error panic"),
			expectInLogs: []string{"test error panic", "*errors.errorString"},
		},
		{
			name:         "panic with user context",
			panicValue:   "user context panic",
			userID:       "caller-123",
			expectInLogs: []string{"caller-123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appLogger, buf := newTestLogger(t)
			e := echo.New()
			e.Use(PanicRecoveryWithLogger(appLogger))
			e.GET("/boom", func(c echo.Context) error {
				if tt.userID != nil {
					c.Set("user_id", tt.userID)
				}
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-42")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "req-42", body["request_id"])

			logs := buf.String()
			assert.Contains(t, logs, "Panic recovered")
			for _, want := range tt.expectInLogs {
				assert.Contains(t, logs, want)
			}
		})
	}
}

func TestPanicRecoveryMiddleware_PassesThrough(t *testing.T) {
	appLogger, buf := newTestLogger(t)
	e := echo.New()
	e.Use(PanicRecoveryWithLogger(appLogger))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
	assert.Empty(t, buf.String())
}

func TestPanicRecoveryMiddleware_TruncatesStack(t *testing.T) {
	appLogger, buf := newTestLogger(t)
	config := PanicRecoveryConfig{StackSize: 64, Logger: appLogger}

	e := echo.New()
	e.Use(PanicRecoveryMiddleware(config))
	e.GET("/boom", func(c echo.Context) error { panic("deep") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	stack, ok := entry["stack_trace"].(string)
	require.True(t, ok)
	assert.LessOrEqual(t, len(stack), 64)
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(DefaultPanicRecoveryConfig())
	})
}

func TestSendPanicResponse_NoRequestID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	sendPanicResponse(c, "")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, present := body["request_id"]
	assert.False(t, present)
	assert.Equal(t, "Internal server error", body["error"])
}
