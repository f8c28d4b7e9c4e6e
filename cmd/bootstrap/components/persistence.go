package components

import (
	"pricewatch/internal/infra/events"
	"pricewatch/internal/infra/readstore"
	"pricewatch/internal/infra/repository"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/infra/uow"
	"pricewatch/internal/usecase/queries"
	"pricewatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule binds the Postgres backend. Requires *pgxpool.Pool.
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
		// Submission
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SubmissionViewQueries)),
		),
		fx.Annotate(
			readstore.NewSubmissionReadStore,
			fx.As(new(queries.SubmissionReadStore)),
		),
		// PriceLedger
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PriceLedgerViewQueries)),
		),
		fx.Annotate(
			readstore.NewPriceLedgerReadStore,
			fx.As(new(queries.PriceLedgerReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserViewQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Outbox relay
		fx.Annotate(
			repository.NewOutboxRelayStore,
			fx.As(new(events.OutboxStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
