package docstore

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmissionReadStore struct {
	store *Store
}

func NewSubmissionReadStore(store *Store) *SubmissionReadStore {
	return &SubmissionReadStore{store: store}
}

func (r *SubmissionReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.SubmissionView, error) {
	doc, found, err := r.load(id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get submission view", err, infra.KindDBFailure)
	}
	if !found {
		return nil, infra.WrapRepoErr("submission not found", nil, infra.KindNotFound)
	}
	return doc.toView(), nil
}

func (r *SubmissionReadStore) FindPendingFirstPage(ctx context.Context, limit int32) ([]*queries.SubmissionView, error) {
	return r.listPending(ctx, "", limit)
}

func (r *SubmissionReadStore) FindPendingKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.SubmissionView, error) {
	// the byte after the cursor key is the first strictly-older entry
	return r.listPending(ctx, pendingKey(lastCreatedAt, lastID)+"\x00", limit)
}

func (r *SubmissionReadStore) listPending(_ context.Context, from string, limit int32) ([]*queries.SubmissionView, error) {
	views := make([]*queries.SubmissionView, 0, limit)
	err := r.store.scanPrefix(prefixPending, from, func(_ string, val []byte) (bool, error) {
		var id uuid.UUID
		if err := json.Unmarshal(val, &id); err != nil {
			return false, errs.Wrap(err, "decode pending index")
		}
		doc, found, err := r.load(id)
		if err != nil {
			return false, err
		}
		if found && doc.Status == "pending" {
			views = append(views, doc.toView())
		}
		return int32(len(views)) < limit, nil // #nosec G115 -- bounded by limit
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending submissions", err, infra.KindDBFailure)
	}
	return views, nil
}

func (r *SubmissionReadStore) load(id uuid.UUID) (submissionDoc, bool, error) {
	var doc submissionDoc
	raw, found, err := getRaw(r.store.db, submissionKey(id))
	if err != nil || !found {
		return doc, found, err
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, false, errs.Wrap(err, "decode submission")
	}
	return doc, true, nil
}

type PriceLedgerReadStore struct {
	store *Store
}

func NewPriceLedgerReadStore(store *Store) *PriceLedgerReadStore {
	return &PriceLedgerReadStore{store: store}
}

func (r *PriceLedgerReadStore) FindByProduct(_ context.Context, productID uuid.UUID) (*priceledger.Ledger, error) {
	raw, found, err := getRaw(r.store.db, ledgerKey(productID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price ledger", err, infra.KindDBFailure)
	}
	if !found {
		return nil, infra.WrapRepoErr("price ledger not found", nil, infra.KindNotFound)
	}
	var doc ledgerDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode price ledger", err, infra.KindDBFailure)
	}
	return doc.toDomain(), nil
}

type UserReadStore struct {
	store *Store
}

func NewUserReadStore(store *Store) *UserReadStore {
	return &UserReadStore{store: store}
}

func (r *UserReadStore) FindRewards(_ context.Context, userID uuid.UUID) (*queries.RewardView, error) {
	raw, found, err := getRaw(r.store.db, userKey(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get user rewards", err, infra.KindDBFailure)
	}
	if !found {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	var doc userDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, infra.WrapRepoErr("failed to decode user", err, infra.KindDBFailure)
	}
	return doc.toView(), nil
}

// FindTopContributors scans every user; the embedded backend targets
// single-node deployments where the user set fits comfortably in memory.
func (r *UserReadStore) FindTopContributors(_ context.Context, limit int32) ([]*queries.RewardView, error) {
	var docs []userDoc
	err := r.store.scanPrefix(prefixUser, "", func(_ string, val []byte) (bool, error) {
		var doc userDoc
		if err := json.Unmarshal(val, &doc); err != nil {
			return false, errs.Wrap(err, "decode user")
		}
		if doc.Points > 0 {
			docs = append(docs, doc)
		}
		return true, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top contributors", err, infra.KindDBFailure)
	}

	slices.SortFunc(docs, func(a, b userDoc) int {
		switch {
		case a.Points != b.Points:
			return compareDesc(a.Points, b.Points)
		case a.ContributionCount != b.ContributionCount:
			return compareDesc(a.ContributionCount, b.ContributionCount)
		default:
			return strings.Compare(a.ID.String(), b.ID.String())
		}
	})
	if int32(len(docs)) > limit { // #nosec G115 -- user count fits int32
		docs = docs[:limit]
	}

	views := make([]*queries.RewardView, len(docs))
	for i, d := range docs {
		views[i] = d.toView()
	}
	return views, nil
}

func compareDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
