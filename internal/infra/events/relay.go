package events

import (
	"context"
	"log/slog"
	"time"

	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/metrics"
	"pricewatch/internal/usecase/shared"
)

const maxRetryDelay = 5 * time.Minute

type OutboxStore interface {
	Drain(ctx context.Context, now time.Time, limit int,
		handle func(ctx context.Context, rec shared.OutboxRecord) shared.OutboxOutcome) (int, error)
}

type RelayOptions struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Relay moves committed outbox records to the publisher. Delivery is
// at-least-once; consumers dedupe on the event key.
type Relay struct {
	store   OutboxStore
	pub     Publisher
	clock   clock.Clock
	metrics *metrics.Registry
	opts    RelayOptions
}

func NewRelay(store OutboxStore, pub Publisher, clk clock.Clock, m *metrics.Registry, opts RelayOptions) *Relay {
	return &Relay{store: store, pub: pub, clock: clk, metrics: m, opts: opts}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	slog.Info("Outbox relay started", "interval", r.opts.PollInterval.String(), "batch", r.opts.BatchSize)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("Outbox drain failed", "error", err)
			}
		}
	}
}

// RunOnce drains one batch and reports how many records it settled.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	return r.store.Drain(ctx, r.clock.Now(), r.opts.BatchSize, r.deliver)
}

func (r *Relay) deliver(ctx context.Context, rec shared.OutboxRecord) shared.OutboxOutcome {
	err := r.pub.Publish(ctx, Message{
		Kind:    rec.Kind,
		Topic:   rec.Topic,
		Key:     rec.Key,
		Payload: rec.Payload,
	})
	if err == nil {
		r.metrics.OutboxPublished.Inc()
		return shared.OutboxOutcome{Sent: true}
	}

	r.metrics.OutboxFailed.Inc()
	attempts := rec.Attempts + 1
	dead := attempts >= r.opts.MaxAttempts
	logFn := slog.Warn
	if dead {
		logFn = slog.Error
	}
	logFn("Outbox publish failed",
		"event_id", rec.ID.String(),
		"kind", rec.Kind,
		"attempts", attempts,
		"dead", dead,
		"error", err.Error())

	return shared.OutboxOutcome{
		Err:     err.Error(),
		RetryAt: r.clock.Now().Add(retryDelay(attempts)),
		Dead:    dead,
	}
}

func retryDelay(attempts int) time.Duration {
	if attempts > 9 {
		return maxRetryDelay
	}
	d := time.Duration(1<<attempts) * time.Second
	return min(d, maxRetryDelay)
}
