package commands

//go:generate mockgen -source=submission.go -destination=../../../tests/mock/commands/submission.go -package=commandsmock

import (
	"context"
	"log/slog"

	"pricewatch/internal/domain/submission"
	"pricewatch/internal/domain/user"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSubmissionRequest struct {
	ProductID     uuid.UUID
	ProductName   string
	ProductImage  string
	SupermarketID string
	Branch        string
	Price         float64
	Latitude      *float64
	Longitude     *float64
}

type CreateSubmissionResult struct {
	SubmissionID uuid.UUID
	Version      int64
}

type SubmissionCommands interface {
	Create(ctx context.Context, req CreateSubmissionRequest, submitter user.Principal) (*CreateSubmissionResult, error)
	Purge(ctx context.Context, submissionID uuid.UUID, actor user.Principal) error
}

type submissionUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSubmissionUseCase(uow shared.UnitOfWork, clk clock.Clock) SubmissionCommands {
	return &submissionUseCaseImpl{uow: uow, clock: clk}
}

func (uc *submissionUseCaseImpl) Create(ctx context.Context, req CreateSubmissionRequest, submitter user.Principal) (*CreateSubmissionResult, error) {
	var geo *submission.GeoPoint
	if req.Latitude != nil || req.Longitude != nil {
		if req.Latitude == nil || req.Longitude == nil {
			return nil, classify(submission.ErrInvalidGeoPoint)
		}
		g, err := submission.NewGeoPoint(*req.Latitude, *req.Longitude)
		if err != nil {
			return nil, classify(err)
		}
		geo = g
	}

	s, err := submission.New(submission.NewParams{
		SubmitterID:          submitter.ID,
		SubmitterDisplayName: submitter.DisplayName,
		ProductID:            req.ProductID,
		ProductName:          req.ProductName,
		ProductImage:         req.ProductImage,
		SupermarketID:        req.SupermarketID,
		Branch:               req.Branch,
		Price:                req.Price,
		Geo:                  geo,
	}, uc.clock.Now())
	if err != nil {
		return nil, classify(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rewards().EnsureUser(ctx, submitter.ID, submitter.DisplayName); err != nil {
			return err
		}
		return tx.Submissions().Create(ctx, s)
	})
	if err != nil {
		return nil, classify(err)
	}

	slog.Info("Submission created",
		"submission_id", s.ID().String(),
		"submitter_id", submitter.ID.String(),
		"product_id", s.ProductID().String(),
		"supermarket_id", s.SupermarketID().String())
	return &CreateSubmissionResult{SubmissionID: s.ID(), Version: s.Version()}, nil
}

// Purge deletes a submission outright. Ledger entries and rewards granted
// by an earlier approval stay in place.
func (uc *submissionUseCaseImpl) Purge(ctx context.Context, submissionID uuid.UUID, actor user.Principal) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Submissions().Delete(ctx, submissionID)
	})
	if err != nil {
		return classify(err)
	}
	slog.Info("Submission purged", "submission_id", submissionID.String(), "actor_id", actor.ID.String())
	return nil
}
