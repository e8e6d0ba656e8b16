package bootstrap

import (
	"context"
	"log/slog"

	"drop-arbiter/internal/infra/db"
	"drop-arbiter/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB connects during construction so a bad DSN fails fx.New instead of
// the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("Closing database pool",
				"acquired_conns", stat.AcquiredConns(),
				"total_conns", stat.TotalConns(),
				"acquire_count", stat.AcquireCount(),
				"canceled_acquire_count", stat.CanceledAcquireCount())
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
