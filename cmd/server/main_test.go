package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orderhub/internal/config"
)

func TestRun_ReturnsStartupErrors(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8000, ShutdownTimeout: time.Second},
		Mongo: config.MongoConfig{
			URI:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200",
			Database:       "orders_db",
			Collection:     "orders",
			ConnectTimeout: time.Second,
		},
		Payment: config.PaymentConfig{Mode: config.PaymentModeMock},
	}

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), cfg, zap.NewNop()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connecting to mongo")
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after a failed mongo connection")
	}
}
