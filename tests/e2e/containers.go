//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// sharedContainer is started at most once per test process and reused by every suite in it.
// The testcontainers reaper removes it when the process exits.
type sharedContainer struct {
	once sync.Once
	port nat.Port
	req  func() testcontainers.ContainerRequest

	c   testcontainers.Container
	err error
}

type endpoint struct {
	Host string
	Port string
}

func (s *sharedContainer) endpoint(t *testing.T) endpoint {
	t.Helper()

	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		s.c, s.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: s.req(),
			Started:          true,
		})
	})
	require.NoError(t, s.err, "container did not start")

	ctx := context.Background()
	host, err := s.c.Host(ctx)
	require.NoError(t, err)
	mapped, err := s.c.MappedPort(ctx, s.port)
	require.NoError(t, err)
	return endpoint{Host: host, Port: mapped.Port()}
}

var postgresContainer = &sharedContainer{
	port: "5432/tcp",
	req: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// Durability off: the data lives for one test run.
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "hotel-booking-e2e"},
		}
	},
}

var mongoContainer = &sharedContainer{
	port: "27017/tcp",
	req: func() testcontainers.ContainerRequest {
		return testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			Tmpfs:        map[string]string{"/data/db": "rw,size=256m"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(time.Minute),
			Labels:       map[string]string{"purpose": "hotel-booking-e2e"},
		}
	},
}
