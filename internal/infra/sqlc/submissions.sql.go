package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const submissionColumns = `id, submitter_id, submitter_display_name, product_id, product_name, product_image,
       supermarket_id, branch, price, latitude, longitude, status, created_at, reviewed_at, version`

func scanSubmission(row pgx.Row) (Submissions, error) {
	var i Submissions
	err := row.Scan(
		&i.ID,
		&i.SubmitterID,
		&i.SubmitterDisplayName,
		&i.ProductID,
		&i.ProductName,
		&i.ProductImage,
		&i.SupermarketID,
		&i.Branch,
		&i.Price,
		&i.Latitude,
		&i.Longitude,
		&i.Status,
		&i.CreatedAt,
		&i.ReviewedAt,
		&i.Version,
	)
	return i, err
}

func collectSubmissions(rows pgx.Rows) ([]Submissions, error) {
	defer rows.Close()
	items := []Submissions{}
	for rows.Next() {
		i, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createSubmission = `
INSERT INTO submissions (
    id, submitter_id, submitter_display_name, product_id, product_name, product_image,
    supermarket_id, branch, price, latitude, longitude, status, created_at, version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending', $12, $13)
`

type CreateSubmissionParams struct {
	ID                   uuid.UUID
	SubmitterID          uuid.UUID
	SubmitterDisplayName string
	ProductID            uuid.UUID
	ProductName          string
	ProductImage         string
	SupermarketID        string
	Branch               string
	Price                float64
	Latitude             pgtype.Float8
	Longitude            pgtype.Float8
	CreatedAt            pgtype.Timestamptz
	Version              int64
}

func (q *Queries) CreateSubmission(ctx context.Context, db DBTX, arg CreateSubmissionParams) error {
	_, err := db.Exec(ctx, createSubmission,
		arg.ID,
		arg.SubmitterID,
		arg.SubmitterDisplayName,
		arg.ProductID,
		arg.ProductName,
		arg.ProductImage,
		arg.SupermarketID,
		arg.Branch,
		arg.Price,
		arg.Latitude,
		arg.Longitude,
		arg.CreatedAt,
		arg.Version,
	)
	return err
}

const getSubmission = `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

func (q *Queries) GetSubmission(ctx context.Context, db DBTX, id uuid.UUID) (Submissions, error) {
	return scanSubmission(db.QueryRow(ctx, getSubmission, id))
}

// reviewSubmission only matches a pending row at the expected version.
const reviewSubmission = `
UPDATE submissions
SET status = $2, reviewed_at = $3, version = version + 1
WHERE id = $1 AND version = $4 AND status = 'pending'
`

type ReviewSubmissionParams struct {
	ID              uuid.UUID
	Status          string
	ReviewedAt      pgtype.Timestamptz
	ExpectedVersion int64
}

func (q *Queries) ReviewSubmission(ctx context.Context, db DBTX, arg ReviewSubmissionParams) (int64, error) {
	tag, err := db.Exec(ctx, reviewSubmission, arg.ID, arg.Status, arg.ReviewedAt, arg.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteSubmission = `DELETE FROM submissions WHERE id = $1`

func (q *Queries) DeleteSubmission(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteSubmission, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listPendingSubmissionsFirstPage = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE status = 'pending'
ORDER BY created_at DESC, id DESC
LIMIT $1
`

func (q *Queries) ListPendingSubmissionsFirstPage(ctx context.Context, db DBTX, limit int32) ([]Submissions, error) {
	rows, err := db.Query(ctx, listPendingSubmissionsFirstPage, limit)
	if err != nil {
		return nil, err
	}
	return collectSubmissions(rows)
}

const listPendingSubmissionsKeyset = `
SELECT ` + submissionColumns + `
FROM submissions
WHERE status = 'pending'
  AND (created_at, id) < ($1, $2)
ORDER BY created_at DESC, id DESC
LIMIT $3
`

type ListPendingSubmissionsKeysetParams struct {
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListPendingSubmissionsKeyset(ctx context.Context, db DBTX, arg ListPendingSubmissionsKeysetParams) ([]Submissions, error) {
	rows, err := db.Query(ctx, listPendingSubmissionsKeyset, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectSubmissions(rows)
}
