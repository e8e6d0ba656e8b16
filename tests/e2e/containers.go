//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
	redisPort  = nat.Port("6379/tcp")
)

// Endpoint is the host side address of a container port.
type Endpoint struct {
	Host string
	Port nat.Port
}

func (e Endpoint) Addr() string {
	return e.Host + ":" + e.Port.Port()
}

// sharedContainer starts at most once per test binary. Every package under
// tests/e2e builds its own binary, so "once" means once per suite.
type sharedContainer struct {
	name     string
	port     nat.Port
	request  func() testcontainers.ContainerRequest
	deadline time.Duration

	once      sync.Once
	container testcontainers.Container
	err       error
}

func (c *sharedContainer) endpoint(t *testing.T) Endpoint {
	t.Helper()

	c.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.deadline)
		defer cancel()
		c.container, c.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: c.request(),
			Started:          true,
		})
		if c.err != nil {
			return
		}
		// ryuk is not available everywhere; terminate explicitly as well
		t.Cleanup(func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			if err := c.container.Terminate(stopCtx); err != nil {
				slog.Warn("failed to terminate container", "container", c.name, "error", err.Error())
			}
		})
	})
	require.NoError(t, c.err, "failed to start %s container", c.name)

	ctx := context.Background()
	host, err := c.container.Host(ctx)
	require.NoError(t, err, "failed to resolve %s host", c.name)
	mapped, err := c.container.MappedPort(ctx, c.port)
	require.NoError(t, err, "failed to resolve %s port", c.name)
	return Endpoint{Host: host, Port: mapped}
}

// Durability is traded for speed: the data directory lives in tmpfs and
// nothing is fsynced.
var pgSettings = []string{
	"fsync=off",
	"full_page_writes=off",
	"synchronous_commit=off",
	"shared_buffers=256MB",
	"max_connections=200",
	"log_statement=none",
	"log_lock_waits=off",
}

var postgresContainer = &sharedContainer{
	name:     "postgres",
	port:     pgPort,
	deadline: 3 * time.Minute,
	request: func() testcontainers.ContainerRequest {
		cmd := []string{"postgres"}
		for _, setting := range pgSettings {
			cmd = append(cmd, "-c", setting)
		}
		return testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd:   cmd,
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return adminDSN(Endpoint{Host: host, Port: port})
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "drop-arbiter-e2e"},
		}
	},
}

var redisContainer = &sharedContainer{
	name:     "redis",
	port:     redisPort,
	deadline: 2 * time.Minute,
	request: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{string(redisPort)},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
			Labels:       map[string]string{"purpose": "drop-arbiter-e2e"},
		}
	},
}

// StartRedis returns the address of a throwaway Redis instance. Call it from
// SetupSuite: the container is terminated when t finishes.
func StartRedis(t *testing.T) string {
	return redisContainer.endpoint(t).Addr()
}

func adminDSN(e Endpoint) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, e.Addr())
}
