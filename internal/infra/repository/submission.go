package repository

//go:generate mockgen -source=submission.go -destination=../../../tests/mock/repository/submission.go -package=repositorymock

import (
	"context"

	"pricewatch/internal/domain/submission"
	"pricewatch/internal/infra"
	"pricewatch/internal/infra/repository/converter"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubmissionWriteQueries interface {
	CreateSubmission(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSubmissionParams) error
	GetSubmission(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Submissions, error)
	ReviewSubmission(ctx context.Context, db sqlc.DBTX, arg sqlc.ReviewSubmissionParams) (int64, error)
	DeleteSubmission(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SubmissionRepository struct {
	queries SubmissionWriteQueries
	db      sqlc.DBTX
}

func NewSubmissionRepository(queries SubmissionWriteQueries, db sqlc.DBTX) *SubmissionRepository {
	return &SubmissionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *submission.Submission) error {
	if err := r.queries.CreateSubmission(ctx, r.db, converter.SubmissionToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create submission", err)
	}
	return nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*submission.Submission, error) {
	row, err := r.queries.GetSubmission(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get submission", err)
	}
	s, err := converter.SubmissionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode submission", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *SubmissionRepository) SaveReview(ctx context.Context, s *submission.Submission) error {
	n, err := r.queries.ReviewSubmission(ctx, r.db, sqlc.ReviewSubmissionParams{
		ID:              s.ID(),
		Status:          s.Status().String(),
		ReviewedAt:      pgconv.TimePtrToPgtype(s.ReviewedAt()),
		ExpectedVersion: s.Version(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to review submission", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("submission changed since it was read", nil, infra.KindConflict)
	}
	return nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteSubmission(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete submission", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("submission not found", nil, infra.KindNotFound)
	}
	return nil
}
