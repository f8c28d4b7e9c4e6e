package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const ensureUser = `
INSERT INTO users (id, display_name)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET display_name = CASE WHEN users.display_name = '' THEN EXCLUDED.display_name ELSE users.display_name END
`

type EnsureUserParams struct {
	ID          uuid.UUID
	DisplayName string
}

func (q *Queries) EnsureUser(ctx context.Context, db DBTX, arg EnsureUserParams) error {
	_, err := db.Exec(ctx, ensureUser, arg.ID, arg.DisplayName)
	return err
}

// creditUser increments in place; the counters are never read back by the writer.
const creditUser = `
INSERT INTO users (id, points, contribution_count)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE
SET points             = users.points + EXCLUDED.points,
    contribution_count = users.contribution_count + EXCLUDED.contribution_count,
    updated_at         = now()
`

type CreditUserParams struct {
	ID            uuid.UUID
	Points        int64
	Contributions int64
}

func (q *Queries) CreditUser(ctx context.Context, db DBTX, arg CreditUserParams) error {
	_, err := db.Exec(ctx, creditUser, arg.ID, arg.Points, arg.Contributions)
	return err
}

const getUser = `
SELECT id, display_name, points, contribution_count, created_at, updated_at
FROM users
WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, getUser, id)
	var i Users
	err := row.Scan(&i.ID, &i.DisplayName, &i.Points, &i.ContributionCount, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listTopContributors = `
SELECT id, display_name, points, contribution_count, created_at, updated_at
FROM users
WHERE points > 0
ORDER BY points DESC, contribution_count DESC, id
LIMIT $1
`

func (q *Queries) ListTopContributors(ctx context.Context, db DBTX, limit int32) ([]Users, error) {
	rows, err := db.Query(ctx, listTopContributors, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Users{}
	for rows.Next() {
		var i Users
		if err := rows.Scan(&i.ID, &i.DisplayName, &i.Points, &i.ContributionCount, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
