package docstore

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/shared"
)

// OutboxRelayStore drains due outbox documents. One relay per process is
// assumed; claims are not leased.
type OutboxRelayStore struct {
	store *Store
}

func NewOutboxRelayStore(store *Store) *OutboxRelayStore {
	return &OutboxRelayStore{store: store}
}

func (s *OutboxRelayStore) Drain(
	ctx context.Context,
	now time.Time,
	limit int,
	handle func(ctx context.Context, rec shared.OutboxRecord) shared.OutboxOutcome,
) (int, error) {
	var due []outboxDoc
	err := s.store.scanPrefix(prefixOutbox, "", func(_ string, val []byte) (bool, error) {
		var doc outboxDoc
		if err := json.Unmarshal(val, &doc); err != nil {
			return false, errs.Wrap(err, "decode outbox event")
		}
		if doc.Status == outboxStatusPending && !doc.RunAt.After(now) {
			due = append(due, doc)
		}
		return true, nil
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to scan outbox", err, infra.KindDBFailure)
	}

	slices.SortFunc(due, func(a, b outboxDoc) int {
		if c := a.RunAt.Compare(b.RunAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	if len(due) > limit {
		due = due[:limit]
	}
	if len(due) == 0 {
		return 0, nil
	}

	txn := s.store.Begin()
	defer txn.Rollback()

	for _, doc := range due {
		out := handle(ctx, shared.OutboxRecord{
			ID:       doc.ID,
			Kind:     doc.Kind,
			Topic:    doc.Topic,
			Key:      doc.Key,
			Payload:  doc.Payload,
			Attempts: doc.Attempts,
		})
		doc.Attempts++
		doc.Version++
		if out.Sent {
			doc.Status = outboxStatusSent
			doc.LastError = ""
		} else {
			doc.LastError = out.Err
			doc.RunAt = out.RetryAt
			if out.Dead {
				doc.Status = outboxStatusDead
			}
		}
		if err := txn.put(outboxKey(doc.ID), doc); err != nil {
			return 0, infra.WrapRepoErr("failed to settle outbox event", err, infra.KindDBFailure)
		}
	}

	if err := txn.Commit(); err != nil {
		return 0, infra.WrapRepoErr("failed to commit outbox settlement", err, infra.KindDBFailure)
	}
	return len(due), nil
}
