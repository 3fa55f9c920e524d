package suite

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
)

const (
	setupTimeout     = 2 * time.Minute
	containerTTLSecs = 120

	redisRepository = "redis"
	redisVersion    = "7-alpine"
	redisExposed    = "6379/tcp"
)

// Suite carries what an integration test needs to talk to a disposable Redis.
type Suite struct {
	*testing.T

	Redis     *redis.Client
	RedisAddr string
}

// New - starts Redis in Docker for the calling test and tears it down afterwards.
// Tests are skipped, not failed, on machines without a reachable Docker daemon.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	t.Cleanup(cancel)

	pool := dockerPool(t)
	addr := startRedis(t, pool)
	client := connectRedis(ctx, t, pool, addr)

	return ctx, &Suite{
		T:         t,
		Redis:     client,
		RedisAddr: addr,
	}
}

func dockerPool(t *testing.T) *dockertest.Pool {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not reachable: %v", err)
	}

	pool.MaxWait = setupTimeout

	return pool
}

// startRedis - runs the container and returns its host:port.
func startRedis(t *testing.T, pool *dockertest.Pool) string {
	t.Helper()

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisRepository,
		Tag:        redisVersion,
	}, func(host *docker.HostConfig) {
		host.AutoRemove = true
		host.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	// hard stop even if the test binary dies before cleanup
	_ = resource.Expire(containerTTLSecs)

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("failed to remove redis container: %v", err)
		}
	})

	return resource.GetHostPort(redisExposed)
}

// connectRedis - waits until the server answers PING; the container accepts TCP before it is ready.
func connectRedis(ctx context.Context, t *testing.T, pool *dockertest.Pool, addr string) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	if err := pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("redis did not become ready at %s: %v", addr, err)
	}

	return client
}
