package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/domain/reward"
	"pricewatch/internal/domain/submission"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: write transaction, retried on serialization conflicts
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinOnce: single attempt. Writes are conditional on the versions read,
	// so a lost race surfaces as a CONFLICT repository error instead of being
	// retried. Atomic increments never conflict.
	WithinOnce(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories already bound to one transaction.
type Tx interface {
	Submissions() SubmissionRepository
	PriceLedgers() PriceLedgerRepository
	Rewards() RewardRepository
	Outbox() OutboxRepository
}

type SubmissionRepository interface {
	Create(ctx context.Context, s *submission.Submission) error
	FindByID(ctx context.Context, id uuid.UUID) (*submission.Submission, error)
	// SaveReview persists a pending->terminal transition. It only applies
	// while the stored record is still pending at s.Version().
	SaveReview(ctx context.Context, s *submission.Submission) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PriceLedgerRepository interface {
	// FindByProduct returns an empty ledger at version 0 when none exists.
	FindByProduct(ctx context.Context, productID uuid.UUID) (*priceledger.Ledger, error)
	// Save writes the full price map guarded by the version it was read at.
	Save(ctx context.Context, l *priceledger.Ledger) error
}

type RewardRepository interface {
	EnsureUser(ctx context.Context, userID uuid.UUID, displayName string) error
	// Credit is an atomic increment; absolute totals are never written.
	Credit(ctx context.Context, userID uuid.UUID, c reward.Credit) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, msg OutboxMessage) error
}
