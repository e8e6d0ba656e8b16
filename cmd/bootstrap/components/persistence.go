package components

import (
	"drop-arbiter/internal/infra/readstore"
	"drop-arbiter/internal/infra/repository"
	sqlc "drop-arbiter/internal/infra/sqlc/generated"
	"drop-arbiter/internal/infra/uow"
	"drop-arbiter/internal/usecase/commands"
	"drop-arbiter/internal/usecase/queries"
	"drop-arbiter/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Drop
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DropReadQueries)),
		),
		fx.Annotate(
			readstore.NewDropReadStore,
			fx.As(new(queries.DropReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.StatsReadStore)),
		),
		// Operator
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OperatorReadQueries)),
		),
		fx.Annotate(
			readstore.NewOperatorReadStore,
			fx.As(new(queries.OperatorReadStore)),
			fx.As(new(commands.OperatorCredentialStore)),
		),
	),
)

// Drop, claim, event and operator repositories are created per transaction
// by the unit of work; only the idempotency store runs on the pool.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		// Idempotency
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.IdempotencyWriteQueries)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
