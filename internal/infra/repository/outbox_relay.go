package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pricewatch/internal/infra"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/pgconv"
	"pricewatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OutboxRelayStore claims due rows with SKIP LOCKED so several relays can
// drain the same table.
type OutboxRelayStore struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

func NewOutboxRelayStore(pool *pgxpool.Pool, queries *sqlc.Queries) *OutboxRelayStore {
	return &OutboxRelayStore{pool: pool, queries: queries}
}

func (s *OutboxRelayStore) Drain(
	ctx context.Context,
	now time.Time,
	limit int,
	handle func(ctx context.Context, rec shared.OutboxRecord) shared.OutboxOutcome,
) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to begin outbox transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback outbox transaction", "error", rbErr.Error())
		}
	}()

	// #nosec G115 -- limit is bounded by config validation
	rows, err := s.queries.ClaimDueOutboxEvents(ctx, tx, sqlc.ClaimDueOutboxEventsParams{
		Now:   pgconv.TimeToPgtype(now),
		Limit: int32(limit),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	for _, row := range rows {
		out := handle(ctx, shared.OutboxRecord{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Key:      row.EventKey,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
		})
		if out.Sent {
			err = s.queries.MarkOutboxEventSent(ctx, tx, row.ID)
		} else {
			err = s.queries.MarkOutboxEventFailed(ctx, tx, sqlc.MarkOutboxEventFailedParams{
				ID:        row.ID,
				LastError: pgconv.StringToPgtype(out.Err),
				RunAt:     pgconv.TimeToPgtype(out.RetryAt),
				Dead:      out.Dead,
			})
		}
		if err != nil {
			return 0, infra.WrapRepoErr("failed to settle outbox event", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, infra.WrapRepoErr("failed to commit outbox transaction", err)
	}
	return len(rows), nil
}
