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

	"drop-arbiter/cmd/bootstrap"
	"drop-arbiter/cmd/bootstrap/components"
	"drop-arbiter/internal/infra/broadcast"
	"drop-arbiter/internal/infra/db"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/usecase/commands"
	"drop-arbiter/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite boots Postgres, a fresh database and the HTTP application once
// per suite and truncates every table before each test and subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Hub    *broadcast.Hub
	Drops  commands.DropCommands
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := postgresContainer.endpoint(t)
	dbConfig := createDatabase(t, pg)
	pool, err := db.Connect(context.Background(), dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(pool.Close)
	require.NoError(t, applyMigrations(pool), "failed to apply migrations")

	startApp(t, s, pool, dbConfig)
	slog.Debug("e2e environment ready", "postgres", pg.Addr(), "database", dbConfig.DBName)
}

func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}

// createDatabase creates a uniquely named database and drops it when t ends.
func createDatabase(t *testing.T, pg Endpoint) config.DBConfig {
	t.Helper()

	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(pg))
	require.NoError(t, err, "failed to open admin connection")
	defer admin.Close()

	// the server can refuse connections briefly after the readiness check
	err = retry(ctx, 5, func() error {
		_, err := admin.Exec(ctx, "CREATE DATABASE "+name)
		return err
	})
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		admin, err := pgxpool.New(dropCtx, adminDSN(pg))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

func retry(ctx context.Context, attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		wait := min(time.Duration(i+1)*500*time.Millisecond, 3*time.Second)
		select {
		case <-ctx.Done():
			return err
		case <-time.After(wait):
		}
	}
	return err
}

// applyMigrations runs every migrations/*.sql file in name order.
func applyMigrations(pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

// migrationsDir walks up from the package directory to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above working directory")
		}
		dir = parent
	}
}

// startApp wires the production modules around the test pool and config.
// The sweeper worker is left out; tests drive expiry through the API or
// DropCommands.ExpireDue.
func startApp(t *testing.T, s *SharedSuite, pool *pgxpool.Pool, dbConfig config.DBConfig) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig

	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&s.Router, &s.Config, &s.Hub, &s.Drops),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start application")
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop application", "error", err.Error())
		}
	})

	s.DB = pool
	require.NotNil(t, s.Router, "router was not built")
}
