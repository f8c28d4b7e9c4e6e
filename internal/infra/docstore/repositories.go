package docstore

import (
	"context"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/domain/reward"
	"pricewatch/internal/domain/submission"
	"pricewatch/internal/infra"
	"pricewatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmissionRepository struct {
	txn *Txn
}

func (r *SubmissionRepository) Create(_ context.Context, s *submission.Submission) error {
	var existing submissionDoc
	found, err := r.txn.get(submissionKey(s.ID()), &existing)
	if err != nil {
		return infra.WrapRepoErr("failed to check submission", err, infra.KindDBFailure)
	}
	if found {
		return infra.WrapRepoErr("submission already exists", nil, infra.KindDuplicateKey)
	}
	if err := r.txn.put(submissionKey(s.ID()), submissionToDoc(s)); err != nil {
		return infra.WrapRepoErr("failed to create submission", err, infra.KindDBFailure)
	}
	if s.Status() == submission.StatusPending {
		if err := r.txn.put(pendingKey(s.CreatedAt(), s.ID()), s.ID()); err != nil {
			return infra.WrapRepoErr("failed to index submission", err, infra.KindDBFailure)
		}
	}
	return nil
}

func (r *SubmissionRepository) FindByID(_ context.Context, id uuid.UUID) (*submission.Submission, error) {
	doc, err := r.load(id)
	if err != nil {
		return nil, err
	}
	s, err := doc.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode submission", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *SubmissionRepository) SaveReview(_ context.Context, s *submission.Submission) error {
	stored, err := r.load(s.ID())
	if err != nil {
		return err
	}
	if stored.Version != s.Version() || stored.Status != submission.StatusPending.String() {
		return infra.WrapRepoErr("submission changed since it was read", nil, infra.KindConflict)
	}

	doc := submissionToDoc(s)
	doc.Version = stored.Version + 1
	if err := r.txn.put(submissionKey(s.ID()), doc); err != nil {
		return infra.WrapRepoErr("failed to review submission", err, infra.KindDBFailure)
	}
	r.txn.delete(pendingKey(stored.CreatedAt, stored.ID))
	return nil
}

func (r *SubmissionRepository) Delete(_ context.Context, id uuid.UUID) error {
	stored, err := r.load(id)
	if err != nil {
		return err
	}
	r.txn.delete(submissionKey(id))
	r.txn.delete(pendingKey(stored.CreatedAt, stored.ID))
	return nil
}

func (r *SubmissionRepository) load(id uuid.UUID) (submissionDoc, error) {
	var doc submissionDoc
	found, err := r.txn.get(submissionKey(id), &doc)
	if err != nil {
		return doc, infra.WrapRepoErr("failed to get submission", err, infra.KindDBFailure)
	}
	if !found {
		return doc, infra.WrapRepoErr("submission not found", nil, infra.KindNotFound)
	}
	return doc, nil
}

type PriceLedgerRepository struct {
	txn *Txn
}

func (r *PriceLedgerRepository) FindByProduct(_ context.Context, productID uuid.UUID) (*priceledger.Ledger, error) {
	var doc ledgerDoc
	found, err := r.txn.get(ledgerKey(productID), &doc)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price ledger", err, infra.KindDBFailure)
	}
	if !found {
		return priceledger.Empty(productID), nil
	}
	return doc.toDomain(), nil
}

// Save relies on the read recorded by FindByProduct; a concurrent writer
// is caught when the Txn commits.
func (r *PriceLedgerRepository) Save(_ context.Context, l *priceledger.Ledger) error {
	var stored ledgerDoc
	found, err := r.txn.get(ledgerKey(l.ProductID()), &stored)
	if err != nil {
		return infra.WrapRepoErr("failed to get price ledger", err, infra.KindDBFailure)
	}
	if found != l.Exists() || stored.Version != l.Version() {
		return infra.WrapRepoErr("price ledger changed since it was read", nil, infra.KindConflict)
	}

	doc := ledgerDoc{
		ProductID:   l.ProductID(),
		Prices:      l.Prices(),
		LastUpdated: l.LastUpdated(),
		Version:     l.Version() + 1,
	}
	if err := r.txn.put(ledgerKey(l.ProductID()), doc); err != nil {
		return infra.WrapRepoErr("failed to save price ledger", err, infra.KindDBFailure)
	}
	return nil
}

type RewardRepository struct {
	txn *Txn
}

func (r *RewardRepository) EnsureUser(_ context.Context, userID uuid.UUID, displayName string) error {
	r.txn.ensureUser(userID, displayName)
	return nil
}

func (r *RewardRepository) Credit(_ context.Context, userID uuid.UUID, c reward.Credit) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsZero() {
		return nil
	}
	r.txn.credit(userID, c)
	return nil
}

type OutboxRepository struct {
	txn *Txn
}

func (r *OutboxRepository) Enqueue(_ context.Context, msg shared.OutboxMessage) error {
	id := uuid.New()
	doc := outboxDoc{
		ID:        id,
		Kind:      msg.Kind,
		Topic:     msg.Topic,
		Key:       msg.Key,
		Payload:   msg.Payload,
		RunAt:     msg.RunAt,
		Status:    outboxStatusPending,
		CreatedAt: r.txn.store.clock.Now(),
		Version:   1,
	}
	if err := r.txn.put(outboxKey(id), doc); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err, infra.KindDBFailure)
	}
	return nil
}
