package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `
INSERT INTO outbox_events (id, kind, topic, event_key, payload, run_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertOutboxEventParams struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	EventKey string
	Payload  []byte
	RunAt    pgtype.Timestamptz
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent, arg.ID, arg.Kind, arg.Topic, arg.EventKey, arg.Payload, arg.RunAt)
	return err
}

// claimDueOutboxEvents must run inside a transaction; SKIP LOCKED lets
// several relays share the table.
const claimDueOutboxEvents = `
SELECT id, kind, topic, event_key, payload, run_at, attempts, status, last_error, created_at, updated_at
FROM outbox_events
WHERE status = 'pending' AND run_at <= $1
ORDER BY run_at, id
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimDueOutboxEventsParams struct {
	Now   pgtype.Timestamptz
	Limit int32
}

func (q *Queries) ClaimDueOutboxEvents(ctx context.Context, db DBTX, arg ClaimDueOutboxEventsParams) ([]OutboxEvents, error) {
	rows, err := db.Query(ctx, claimDueOutboxEvents, arg.Now, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OutboxEvents{}
	for rows.Next() {
		var i OutboxEvents
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.EventKey,
			&i.Payload,
			&i.RunAt,
			&i.Attempts,
			&i.Status,
			&i.LastError,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxEventSent = `
UPDATE outbox_events
SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
WHERE id = $1
`

func (q *Queries) MarkOutboxEventSent(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, markOutboxEventSent, id)
	return err
}

const markOutboxEventFailed = `
UPDATE outbox_events
SET attempts   = attempts + 1,
    last_error = $2,
    run_at     = $3,
    status     = CASE WHEN $4::boolean THEN 'dead' ELSE 'pending' END,
    updated_at = now()
WHERE id = $1
`

type MarkOutboxEventFailedParams struct {
	ID        uuid.UUID
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
	Dead      bool
}

func (q *Queries) MarkOutboxEventFailed(ctx context.Context, db DBTX, arg MarkOutboxEventFailedParams) error {
	_, err := db.Exec(ctx, markOutboxEventFailed, arg.ID, arg.LastError, arg.RunAt, arg.Dead)
	return err
}
