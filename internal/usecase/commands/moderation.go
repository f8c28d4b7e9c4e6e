package commands

//go:generate mockgen -source=moderation.go -destination=../../../tests/mock/commands/moderation.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pricewatch/internal/domain/reward"
	"pricewatch/internal/domain/submission"
	"pricewatch/internal/domain/user"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/pkg/metrics"
	"pricewatch/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type ReviewRequest struct {
	SubmissionID uuid.UUID
	// ExpectedVersion is the version the moderator looked at. Nil skips
	// the check; the conditional write still guards against lost updates.
	ExpectedVersion *int64
	Moderator       user.Principal
}

type ReviewResult struct {
	SubmissionID uuid.UUID
	Status       submission.Status
	ReviewedAt   time.Time
	Version      int64
}

type ModerationCommands interface {
	Approve(ctx context.Context, req ReviewRequest) (*ReviewResult, error)
	Reject(ctx context.Context, req ReviewRequest) (*ReviewResult, error)
}

type ModerationOptions struct {
	EventsTopic string
	Timeout     time.Duration
}

type moderationUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *metrics.Registry
	opts    ModerationOptions
}

func NewModerationUseCase(uow shared.UnitOfWork, clk clock.Clock, m *metrics.Registry, opts ModerationOptions) ModerationCommands {
	return &moderationUseCaseImpl{uow: uow, clock: clk, metrics: m, opts: opts}
}

// Approve marks the submission approved, merges its price into the
// product ledger, credits the submitter and enqueues a price.approved
// event. All of it commits in one transaction or not at all.
func (uc *moderationUseCaseImpl) Approve(ctx context.Context, req ReviewRequest) (*ReviewResult, error) {
	return uc.review(ctx, ActionApprove, req, uc.applyApproval)
}

// Reject only touches the submission.
func (uc *moderationUseCaseImpl) Reject(ctx context.Context, req ReviewRequest) (*ReviewResult, error) {
	return uc.review(ctx, ActionReject, req, nil)
}

type sideEffects func(ctx context.Context, tx shared.Tx, s *submission.Submission, req ReviewRequest, now time.Time) error

func (uc *moderationUseCaseImpl) review(ctx context.Context, action string, req ReviewRequest, effects sideEffects) (*ReviewResult, error) {
	start := time.Now()
	if uc.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.Timeout)
		defer cancel()
	}

	now := uc.clock.Now()
	var result *ReviewResult
	err := uc.uow.WithinOnce(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Submissions().FindByID(ctx, req.SubmissionID)
		if err != nil {
			return err
		}
		if s.Status() != submission.StatusPending {
			return errs.Mark(errs.Wrapf(ErrAlreadyReviewed, "submission is %s", s.Status()), errs.ErrInvalidState)
		}
		if req.ExpectedVersion != nil && *req.ExpectedVersion != s.Version() {
			return errs.Mark(
				errs.Wrapf(ErrVersionMismatch, "expected %d, stored %d", *req.ExpectedVersion, s.Version()),
				errs.ErrConcurrentModification,
			)
		}

		if action == ActionApprove {
			err = s.Approve(now)
		} else {
			err = s.Reject(now)
		}
		if err != nil {
			return err
		}
		if err := tx.Submissions().SaveReview(ctx, s); err != nil {
			return err
		}
		if effects != nil {
			if err := effects(ctx, tx, s, req, now); err != nil {
				return err
			}
		}

		result = &ReviewResult{
			SubmissionID: s.ID(),
			Status:       s.Status(),
			ReviewedAt:   now,
			Version:      s.Version() + 1,
		}
		return nil
	})
	err = classify(err)

	outcome := outcomeLabel(err)
	uc.metrics.ModerationTotal.WithLabelValues(action, outcome).Inc()
	uc.metrics.ModerationDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())

	logAttrs := []any{
		"action", action,
		"submission_id", req.SubmissionID.String(),
		"moderator_id", req.Moderator.ID.String(),
		"outcome", outcome,
	}
	switch outcome {
	case "success":
		slog.Info("Submission reviewed", logAttrs...)
	case "invalid_state":
		slog.Info("Submission already reviewed", logAttrs...)
	case "conflict", "not_found":
		slog.Warn("Submission review aborted", append(logAttrs, "error", err.Error())...)
	default:
		slog.Error("Submission review failed", append(logAttrs, "error", err.Error())...)
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *moderationUseCaseImpl) applyApproval(ctx context.Context, tx shared.Tx, s *submission.Submission, req ReviewRequest, now time.Time) error {
	ledger, err := tx.PriceLedgers().FindByProduct(ctx, s.ProductID())
	if err != nil {
		return err
	}
	merged, err := ledger.WithPrice(s.SupermarketID().String(), s.Price().Value(), s.Branch(), now)
	if err != nil {
		return err
	}
	if err := tx.PriceLedgers().Save(ctx, merged); err != nil {
		return err
	}

	if err := tx.Rewards().Credit(ctx, s.SubmitterID(), reward.ApprovalCredit); err != nil {
		return err
	}

	payload, err := json.Marshal(shared.PriceApprovedEvent{
		SubmissionID:  s.ID(),
		ProductID:     s.ProductID(),
		SupermarketID: s.SupermarketID().String(),
		Price:         s.Price().Value(),
		Location:      s.Branch(),
		ApprovedAt:    now,
		ModeratorID:   req.Moderator.ID,
	})
	if err != nil {
		return errs.Wrap(err, "encode price approved event")
	}
	return tx.Outbox().Enqueue(ctx, shared.OutboxMessage{
		Kind:    shared.OutboxKindPriceApproved,
		Topic:   uc.opts.EventsTopic,
		Key:     s.ProductID().String(),
		Payload: payload,
		RunAt:   now,
	})
}
