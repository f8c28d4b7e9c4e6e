package queries

import (
	"pricewatch/internal/infra"
	"pricewatch/internal/pkg/errs"
)

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrStoreUnavailable)
	default:
		return err
	}
}
