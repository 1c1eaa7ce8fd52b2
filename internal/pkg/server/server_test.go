package server

import (
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpawlak/wedrownik/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zapLogger, err := logger.NewZapLogger(logger.Config{Level: "error"})
	require.NoError(t, err)
	return zapLogger
}

func TestNewGracefulServer(t *testing.T) {
	gs := NewGracefulServer(echo.New(), testLogger(t), 8080)

	assert.NotNil(t, gs)
	assert.Equal(t, 8080, gs.port)
	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
}

func TestGracefulServerShutdown(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, testLogger(t), 0)

	go func() {
		// Port 0 picks a free port so parallel test runs don't collide.
		_ = e.Start(":0")
	}()
	time.Sleep(50 * time.Millisecond)

	assert.NoError(t, gs.Shutdown())
}
