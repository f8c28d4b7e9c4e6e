package docstore

import (
	"encoding/json"
	"log/slog"
	"time"

	"pricewatch/internal/domain/reward"
	"pricewatch/internal/pkg/errs"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
)

// Txn reads from one pebble snapshot and buffers writes. Commit fails
// with ErrConflict if any document read changed after the snapshot.
type Txn struct {
	store *Store
	snap  *pebble.Snapshot

	reads  map[string]int64 // key -> version observed, 0 when absent
	writes map[string][]byte
	order  []string

	ensures map[uuid.UUID]string
	credits map[uuid.UUID]reward.Credit
}

func (s *Store) Begin() *Txn {
	return &Txn{
		store:   s,
		snap:    s.db.NewSnapshot(),
		reads:   map[string]int64{},
		writes:  map[string][]byte{},
		ensures: map[uuid.UUID]string{},
		credits: map[uuid.UUID]reward.Credit{},
	}
}

// get decodes the document at key into out. Buffered writes are visible
// to later reads in the same Txn.
func (t *Txn) get(key string, out any) (bool, error) {
	if raw, ok := t.writes[key]; ok {
		if raw == nil {
			return false, nil
		}
		return true, json.Unmarshal(raw, out)
	}

	raw, found, err := getRaw(t.snap, key)
	if err != nil {
		return false, errs.Wrap(err, "pebble get")
	}
	if !found {
		t.reads[key] = 0
		return false, nil
	}
	v, err := versionOf(raw)
	if err != nil {
		return false, errs.Wrap(err, "decode document version")
	}
	t.reads[key] = v
	return true, json.Unmarshal(raw, out)
}

func (t *Txn) put(key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errs.Wrap(err, "encode document")
	}
	t.stage(key, raw)
	return nil
}

func (t *Txn) delete(key string) {
	t.stage(key, nil)
}

func (t *Txn) stage(key string, raw []byte) {
	if _, seen := t.writes[key]; !seen {
		t.order = append(t.order, key)
	}
	t.writes[key] = raw
}

func (t *Txn) ensureUser(id uuid.UUID, displayName string) {
	if _, ok := t.ensures[id]; !ok || displayName != "" {
		t.ensures[id] = displayName
	}
}

func (t *Txn) credit(id uuid.UUID, c reward.Credit) {
	t.credits[id] = t.credits[id].Add(c)
}

// Commit validates every read version against the live store and then
// writes one atomic batch. Reward increments are applied to the live
// value under the same lock, so they never lose concurrent credits.
func (t *Txn) Commit() error {
	defer t.Rollback()

	s := t.store
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	for key, seen := range t.reads {
		raw, found, err := getRaw(s.db, key)
		if err != nil {
			return errs.Wrap(err, "pebble get")
		}
		var cur int64
		if found {
			if cur, err = versionOf(raw); err != nil {
				return errs.Wrap(err, "decode document version")
			}
		}
		if cur != seen {
			slog.Debug("docstore conflict", "key", key, "read_version", seen, "current_version", cur)
			return ErrConflict
		}
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	for _, key := range t.order {
		raw := t.writes[key]
		var err error
		if raw == nil {
			err = batch.Delete([]byte(key), nil)
		} else {
			err = batch.Set([]byte(key), raw, nil)
		}
		if err != nil {
			return errs.Wrap(err, "stage batch write")
		}
	}

	if err := t.applyUserChanges(batch, s.clock.Now()); err != nil {
		return err
	}

	if batch.Empty() {
		return nil
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return errs.Wrap(err, "pebble commit")
	}
	return nil
}

func (t *Txn) applyUserChanges(batch *pebble.Batch, now time.Time) error {
	touched := map[uuid.UUID]struct{}{}
	for id := range t.ensures {
		touched[id] = struct{}{}
	}
	for id := range t.credits {
		touched[id] = struct{}{}
	}

	for id := range touched {
		key := userKey(id)
		raw, found, err := getRaw(t.store.db, key)
		if err != nil {
			return errs.Wrap(err, "pebble get")
		}
		doc := userDoc{ID: id, CreatedAt: now}
		if found {
			if err := json.Unmarshal(raw, &doc); err != nil {
				return errs.Wrap(err, "decode user")
			}
		}
		if name, ok := t.ensures[id]; ok && doc.DisplayName == "" {
			doc.DisplayName = name
		}
		bal := doc.balance().Apply(t.credits[id])
		doc.Points, doc.ContributionCount = bal.Points, bal.ContributionCount
		doc.UpdatedAt = now
		doc.Version++

		out, err := json.Marshal(doc)
		if err != nil {
			return errs.Wrap(err, "encode user")
		}
		if err := batch.Set([]byte(key), out, nil); err != nil {
			return errs.Wrap(err, "stage batch write")
		}
	}
	return nil
}

// Rollback releases the snapshot. It is safe to call more than once.
func (t *Txn) Rollback() {
	if t.snap == nil {
		return
	}
	if err := t.snap.Close(); err != nil {
		slog.Warn("failed to close pebble snapshot", "error", err.Error())
	}
	t.snap = nil
}
