package docstore

import (
	"context"
	"log/slog"
	"time"

	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/shared"
)

const maxCommitRetries = 3

type UoW struct {
	store *Store
}

func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.run(ctx, fn)
		if err == nil || !infra.IsKind(err, infra.KindConflict) || attempt == maxCommitRetries {
			return err
		}
		wait := time.Duration(attempt+1) * 10 * time.Millisecond
		slog.Warn("retrying document transaction after conflict",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *UoW) WithinOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, fn)
}

func (u *UoW) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	txn := u.store.Begin()
	defer txn.Rollback()

	if err := fn(ctx, &docTx{txn: txn}); err != nil {
		return err
	}
	if err := txn.Commit(); err != nil {
		if errs.Is(err, ErrConflict) {
			return infra.WrapRepoErr("document transaction conflict", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to commit document transaction", err, infra.KindDBFailure)
	}
	return nil
}

type docTx struct {
	txn *Txn
}

func (t *docTx) Submissions() shared.SubmissionRepository {
	return &SubmissionRepository{txn: t.txn}
}

func (t *docTx) PriceLedgers() shared.PriceLedgerRepository {
	return &PriceLedgerRepository{txn: t.txn}
}

func (t *docTx) Rewards() shared.RewardRepository {
	return &RewardRepository{txn: t.txn}
}

func (t *docTx) Outbox() shared.OutboxRepository {
	return &OutboxRepository{txn: t.txn}
}
