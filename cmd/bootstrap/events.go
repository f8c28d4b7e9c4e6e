package bootstrap

import (
	"context"
	"log/slog"

	"pricewatch/internal/infra/events"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/config"
	"pricewatch/internal/pkg/metrics"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(startRelay),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (events.Publisher, error) {
	var pub events.Publisher
	switch cfg.Events.Sink {
	case config.EventsSinkKafka:
		pub = events.NewKafkaPublisher(cfg.Events.KafkaBrokers)
	case config.EventsSinkNATS:
		p, err := events.NewNATSPublisher(cfg.Events.NATSURL)
		if err != nil {
			return nil, err
		}
		pub = p
	default:
		pub = events.NewLogPublisher()
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewRelay(store events.OutboxStore, pub events.Publisher, clk clock.Clock, m *metrics.Registry, cfg config.Config) *events.Relay {
	return events.NewRelay(store, pub, clk, m, events.RelayOptions{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
	})
}

func startRelay(lc fx.Lifecycle, relay *events.Relay, cfg config.Config, logger *slog.Logger) {
	if !cfg.Outbox.Enabled {
		logger.Info("Outbox relay disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
