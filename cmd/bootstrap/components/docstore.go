package components

import (
	"pricewatch/internal/infra/docstore"
	"pricewatch/internal/infra/events"
	"pricewatch/internal/usecase/queries"
	"pricewatch/internal/usecase/shared"

	"go.uber.org/fx"
)

// DocStoreModule binds the embedded pebble backend. Requires *docstore.Store.
var DocStoreModule = fx.Module("persistence/docstore",
	fx.Provide(
		fx.Annotate(
			docstore.NewUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			docstore.NewSubmissionReadStore,
			fx.As(new(queries.SubmissionReadStore)),
		),
		fx.Annotate(
			docstore.NewPriceLedgerReadStore,
			fx.As(new(queries.PriceLedgerReadStore)),
		),
		fx.Annotate(
			docstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			docstore.NewOutboxRelayStore,
			fx.As(new(events.OutboxStore)),
		),
	),
)
