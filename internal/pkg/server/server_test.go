package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t testing.TB) *logger.AppLogger {
	t.Helper()
	l, err := logger.NewAppLogger(logger.Config{Level: "error", Service: "fare-service"})
	require.NoError(t, err)
	l.Logger.SetOutput(io.Discard)
	return l
}

func TestNewGracefulServer_AppliesTimeouts(t *testing.T) {
	e := echo.New()
	cfg := models.ServerConfig{Port: 8080, ReadTimeout: 7, WriteTimeout: 9}

	gs := NewGracefulServer(e, newTestLogger(t), cfg, nil)

	require.NotNil(t, gs)
	assert.Equal(t, 7*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 9*time.Second, e.Server.WriteTimeout)
}

func TestGracefulServer_Run(t *testing.T) {
	appLogger := newTestLogger(t)
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	var stopped []string
	var mu sync.Mutex
	components := NewShutdownManager(appLogger)
	components.Register(func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		stopped = append(stopped, "database")
		return nil
	})
	components.Register(func(ctx context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		stopped = append(stopped, "consumers")
		return nil
	})

	gs := NewGracefulServer(e, appLogger, models.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: 5}, components)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", e.ListenerAddr().String()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"consumers", "database"}, stopped)
}

func TestGracefulServer_RunListenError(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, newTestLogger(t), models.ServerConfig{Host: "256.0.0.1", Port: 1}, nil)

	err := gs.Run(context.Background())
	assert.Error(t, err)
}

func TestShutdownManager_Shutdown(t *testing.T) {
	t.Run("runs every component in reverse order", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		var order []int
		for i := 0; i < 3; i++ {
			i := i
			sm.Register(func(ctx context.Context) error {
				order = append(order, i)
				return nil
			})
		}

		require.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, []int{2, 1, 0}, order)
	})

	t.Run("continues after a failure and joins errors", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		errA := errors.New("nsq stop failed")
		errB := errors.New("redis close failed")
		called := 0
		sm.Register(func(ctx context.Context) error { called++; return errA })
		sm.Register(func(ctx context.Context) error { called++; return nil })
		sm.Register(func(ctx context.Context) error { called++; return errB })

		err := sm.Shutdown(context.Background())

		assert.Equal(t, 3, called)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
	})

	t.Run("no components", func(t *testing.T) {
		sm := NewShutdownManager(newTestLogger(t))
		assert.NoError(t, sm.Shutdown(context.Background()))
	})
}

func TestShutdownManager_ConcurrentRegister(t *testing.T) {
	sm := NewShutdownManager(newTestLogger(t))
	var wg sync.WaitGroup
	var mu sync.Mutex
	calls := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Register(func(ctx context.Context) error {
				mu.Lock()
				calls++
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, sm.Shutdown(context.Background()))
	assert.Equal(t, 50, calls)
}
