package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"orderhub/internal/config"
	"orderhub/internal/infrastructure/logger"
	"orderhub/internal/infrastructure/mongodb"
	"orderhub/internal/infrastructure/redis"
	"orderhub/internal/order"
	"orderhub/internal/order/cache"
	"orderhub/internal/order/usecase"
	"orderhub/internal/payment"
	"orderhub/internal/server"
)

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, zapLogger)
	stop()

	if err != nil {
		zapLogger.Error("server exited with error", zap.Error(err))
		_ = zapLogger.Sync()
		os.Exit(1)
	}

	zapLogger.Info("server stopped gracefully")
	_ = zapLogger.Sync()
}

// run owns every resource it opens and releases them before returning, so
// callers may exit the process as soon as it does.
func run(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) error {
	client, err := mongodb.NewConnection(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connecting to mongo: %w", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			zapLogger.Error("disconnecting from mongo", zap.Error(err))
		}
	}()
	zapLogger.Info("mongo connected", zap.String("database", cfg.Mongo.Database))

	coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
	if err := mongodb.EnsureIndexes(ctx, coll); err != nil {
		return fmt.Errorf("creating indexes: %w", err)
	}

	gateway, err := payment.New(cfg.Payment, zapLogger)
	if err != nil {
		return fmt.Errorf("creating payment gateway: %w", err)
	}

	var orderCache usecase.OrderCache = cache.NopCache{}
	if cfg.Cache.Enabled {
		rdb, err := redis.NewConnection(ctx, cfg.Cache)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()
		orderCache = cache.NewRedisOrderCache(rdb, cfg.Cache.TTL)
		zapLogger.Info("order cache enabled", zap.String("addr", cfg.Cache.Addr), zap.Duration("ttl", cfg.Cache.TTL))
	}

	orderCtrl := order.NewModule(coll, gateway, orderCache, zapLogger)
	router := server.NewRouter(orderCtrl, zapLogger)
	srv := server.New(cfg.Server, router, zapLogger)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		zapLogger.Info("received shutdown signal")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return <-serveErr
}
