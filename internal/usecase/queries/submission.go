package queries

//go:generate mockgen -source=submission.go -destination=../../../tests/mock/queries/submission.go -package=queriesmock

import (
	"context"
	"iter"
	"time"

	"github.com/google/uuid"
)

type SubmissionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SubmissionView, error)
	FindPendingFirstPage(ctx context.Context, limit int32) ([]*SubmissionView, error)
	FindPendingKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*SubmissionView, error)
}

type SubmissionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SubmissionView, error)
	// ListPendingPage returns pending submissions newest first.
	ListPendingPage(ctx context.Context, cursor *Cursor, limit int) ([]*SubmissionView, *Cursor, error)
	// ListPending walks every pending submission newest first, one page at
	// a time. Each range over the result starts again from the top.
	ListPending(ctx context.Context, pageSize int) iter.Seq2[*SubmissionView, error]
}

type submissionQueriesImpl struct {
	store SubmissionReadStore
}

func NewSubmissionQueries(store SubmissionReadStore) SubmissionQueries {
	return &submissionQueriesImpl{store: store}
}

func (q *submissionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SubmissionView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return v, nil
}

func (q *submissionQueriesImpl) ListPendingPage(ctx context.Context, cursor *Cursor, limit int) ([]*SubmissionView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*SubmissionView
	var err error
	// #nosec G115 -- limit is capped by ValidateLimit
	fetch := int32(limit + 1)
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindPendingFirstPage(ctx, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.FindPendingKeyset(ctx, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, classify(err)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *submissionQueriesImpl) ListPending(ctx context.Context, pageSize int) iter.Seq2[*SubmissionView, error] {
	return func(yield func(*SubmissionView, error) bool) {
		var cursor *Cursor
		for {
			page, next, err := q.ListPendingPage(ctx, cursor, pageSize)
			if err != nil {
				yield(nil, err)
				return
			}
			for _, v := range page {
				if !yield(v, nil) {
					return
				}
			}
			if next == nil {
				return
			}
			cursor = next
		}
	}
}
