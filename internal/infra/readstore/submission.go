package readstore

import (
	"context"
	"time"

	"pricewatch/internal/infra"
	"pricewatch/internal/infra/repository/converter"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/pgconv"
	"pricewatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmissionViewQueries interface {
	GetSubmission(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Submissions, error)
	ListPendingSubmissionsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.Submissions, error)
	ListPendingSubmissionsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingSubmissionsKeysetParams) ([]sqlc.Submissions, error)
}

type SubmissionReadStore struct {
	queries SubmissionViewQueries
	db      sqlc.DBTX
}

func NewSubmissionReadStore(queries SubmissionViewQueries, db sqlc.DBTX) *SubmissionReadStore {
	return &SubmissionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SubmissionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SubmissionView, error) {
	row, err := r.queries.GetSubmission(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("submission not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get submission view", err)
	}
	return converter.SubmissionViewFromRow(row), nil
}

func (r *SubmissionReadStore) FindPendingFirstPage(ctx context.Context, limit int32) ([]*queries.SubmissionView, error) {
	rows, err := r.queries.ListPendingSubmissionsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending submissions", err)
	}
	return converter.SubmissionViewsFromRows(rows), nil
}

func (r *SubmissionReadStore) FindPendingKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.SubmissionView, error) {
	rows, err := r.queries.ListPendingSubmissionsKeyset(ctx, r.db, sqlc.ListPendingSubmissionsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending submissions after cursor", err)
	}
	return converter.SubmissionViewsFromRows(rows), nil
}
