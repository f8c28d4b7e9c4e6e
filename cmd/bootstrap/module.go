package bootstrap

import (
	"pricewatch/cmd/bootstrap/components"
	"pricewatch/internal/pkg/config"

	"go.uber.org/fx"
)

// Module assembles the application. The storage backend is fixed at
// startup, so only the matching persistence graph is built.
func Module(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		LoggerModule,
		MetricsModule,
		JWTModule,
		StoreModule(cfg.Store.Backend),
		EventsModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}

func StoreModule(backend string) fx.Option {
	if backend == config.StoreBackendPebble {
		return fx.Options(DocStoreModule, components.DocStoreModule)
	}
	return fx.Options(DBModule, components.PersistenceModule)
}
