//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

// SharedSuite gives every e2e suite a running application backed by its own Postgres
// database and Mongo database. State is wiped before each subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Mongo  *mongo.Database
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, postgresContainer.endpoint(t))
	mongoAt := mongoContainer.endpoint(t)
	cfg.Mongo = config.MongoConfig{
		URI:            fmt.Sprintf("mongodb://%s:%s", mongoAt.Host, mongoAt.Port),
		Database:       uniqueName("hotel_booking"),
		ConnectTimeout: 10 * time.Second,
	}

	pool, err := db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(pool.Close)
	require.NoError(t, applyMigrations(pool), "database migration failed")

	s.DB = pool
	s.startApp(t, cfg)
}

func (s *SharedSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.Mongo != nil {
		if err := s.Mongo.Drop(ctx); err != nil {
			slog.Warn("failed to drop test mongo database", "error", err)
		}
	}
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset postgres state")
	require.NoError(s.T(), dbtest.ResetMongo(s.Mongo), "failed to reset mongo state")
}

func (s *SharedSuite) startApp(t *testing.T, cfg config.Config) {
	app := fx.New(
		fx.Supply(s.DB, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MongoModule,
		bootstrap.MessagingModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&s.Router, &s.Config, &s.Mongo),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "application did not start")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop application", "error", err)
		}
	})
}

func uniqueName(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// createDatabase makes a throwaway database for this test process and drops it afterwards.
func createDatabase(t *testing.T, at endpoint) config.DBConfig {
	t.Helper()

	name := uniqueName("testdb")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, at.Host, at.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	// The server may still be finishing its own startup even after the wait strategy passes.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		p, err := pgxpool.New(dropCtx, adminDSN)
		if err != nil {
			return
		}
		defer p.Close()
		if _, err := p.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     at.Host,
		Port:     at.Port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// applyMigrations runs every migrations/*.sql file in name order.
func applyMigrations(pool *pgxpool.Pool) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations found under %s", root)
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// moduleRoot walks up from the package directory go test runs in until it finds go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}
