package bootstrap

import (
	"context"

	"pricewatch/internal/infra/db"
	"pricewatch/internal/infra/docstore"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

var DocStoreModule = fx.Module("docstore",
	fx.Provide(
		NewDocStore,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewDocStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (*docstore.Store, error) {
	store, err := docstore.Open(cfg.Store.PebbleDir, clk)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
