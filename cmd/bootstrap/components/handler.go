package components

import (
	"pricewatch/internal/handler"
	"pricewatch/internal/handler/api"
	"pricewatch/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSubmissionHandler,
		api.NewModerationHandler,
		api.NewPriceLedgerHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
