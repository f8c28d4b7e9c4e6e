package commands

import (
	"context"
	"errors"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/domain/reward"
	"pricewatch/internal/domain/submission"
	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/errs"
)

var (
	ErrVersionMismatch = errs.New("submission version does not match")
	ErrAlreadyReviewed = errs.New("submission is no longer pending")
)

var validationErrors = []error{
	submission.ErrInvalidPrice,
	submission.ErrInvalidSupermarketID,
	submission.ErrInvalidGeoPoint,
	submission.ErrEmptyProductName,
	submission.ErrMissingProduct,
	submission.ErrMissingSubmitter,
	submission.ErrBranchTooLong,
	priceledger.ErrNegativePrice,
	reward.ErrNegativeCredit,
}

// classify marks err with the moderation taxonomy so callers can branch on
// errs.Is without knowing which backend produced it.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		errs.ErrNotFound,
		errs.ErrInvalidState,
		errs.ErrConcurrentModification,
		errs.ErrStoreUnavailable,
		errs.ErrValidation,
	} {
		if errs.Is(err, known) {
			return err
		}
	}

	switch {
	case errors.Is(err, submission.ErrNotPending):
		return errs.Mark(err, errs.ErrInvalidState)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrConcurrentModification)
	case infra.IsKind(err, infra.KindDBFailure),
		errors.Is(err, context.DeadlineExceeded):
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return errs.Mark(err, errs.ErrValidation)
		}
	}
	return err
}

// outcomeLabel is the metrics label for a classified error.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errs.Is(err, errs.ErrInvalidState):
		return "invalid_state"
	case errs.Is(err, errs.ErrConcurrentModification):
		return "conflict"
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrStoreUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
