package repository

import (
	"context"

	"pricewatch/internal/infra"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/pgconv"
	"pricewatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, msg shared.OutboxMessage) error {
	err := r.queries.InsertOutboxEvent(ctx, r.db, sqlc.InsertOutboxEventParams{
		ID:       uuid.New(),
		Kind:     msg.Kind,
		Topic:    msg.Topic,
		EventKey: msg.Key,
		Payload:  msg.Payload,
		RunAt:    pgconv.TimeToPgtype(msg.RunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}
