package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

const testRedisDB = 15

// SetupTestRedis connects to TEST_REDIS_ADDR (default localhost:6379) on a
// dedicated logical database and skips the test when Redis is unreachable.
func SetupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := goredis.NewClient(&goredis.Options{Addr: addr, DB: testRedisDB})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("test redis not available: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush test redis: %v", err)
	}

	return client
}

func CleanupTestRedis(t *testing.T, client *goredis.Client) {
	t.Helper()

	if client == nil {
		return
	}

	if err := client.FlushDB(context.Background()).Err(); err != nil {
		t.Logf("failed to flush test redis: %v", err)
	}
	_ = client.Close()
}
