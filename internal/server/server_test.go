package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orderhub/internal/config"
)

func TestNew_UsesConfiguredPort(t *testing.T) {
	srv := New(config.ServerConfig{Port: 8123, ShutdownTimeout: time.Second}, http.NotFoundHandler(), zap.NewNop())

	assert.Equal(t, ":8123", srv.Addr())
}

func TestShutdown_StopsStart(t *testing.T) {
	srv := New(config.ServerConfig{Port: 0, ShutdownTimeout: time.Second}, http.NotFoundHandler(), zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	// Give ListenAndServe a moment to bind.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, srv.Shutdown(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
