// Package docstore is the embedded document backend. Documents are JSON
// values in pebble keyed by collection prefix; writes go through Txn,
// which validates read versions at commit.
package docstore

import (
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/errs"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

var ErrConflict = errs.New("docstore: document changed since it was read")

type Store struct {
	db    *pebble.DB
	clock clock.Clock

	// commitMu serializes validation and batch commit
	commitMu sync.Mutex
}

// Open opens an on-disk store. An empty dir keeps everything in memory.
func Open(dir string, clk clock.Clock) (*Store, error) {
	opts := &pebble.Options{}
	path := filepath.Clean(dir)
	if dir == "" {
		opts.FS = vfs.NewMem()
		path = ""
	}
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errs.Wrap(err, "pebble open")
	}
	slog.Info("Document store opened", "dir", dir, "in_memory", dir == "")
	return &Store{db: db, clock: clk}, nil
}

func (s *Store) Close() error { return s.db.Close() }

type reader interface {
	Get(key []byte) ([]byte, io.Closer, error)
}

// getRaw copies the value out so the closer can be released immediately.
func getRaw(r reader, key string) ([]byte, bool, error) {
	v, closer, err := r.Get([]byte(key))
	if errs.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()
	return append([]byte(nil), v...), true, nil
}

type versionProbe struct {
	Version int64 `json:"version"`
}

func versionOf(raw []byte) (int64, error) {
	var p versionProbe
	if err := json.Unmarshal(raw, &p); err != nil {
		return 0, err
	}
	return p.Version, nil
}

// scanPrefix calls fn for each key under prefix in key order until fn
// returns false.
func (s *Store) scanPrefix(prefix, from string, fn func(key string, val []byte) (bool, error)) error {
	lower := prefix
	if from != "" {
		lower = from
	}
	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(lower),
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return errs.Wrap(err, "pebble iter")
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		k := string(it.Key())
		v := append([]byte(nil), it.Value()...)
		more, err := fn(k, v)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return it.Error()
}

func prefixUpperBound(prefix string) []byte {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 0xff {
			b[i]++
			return b[:i+1]
		}
	}
	return nil
}
