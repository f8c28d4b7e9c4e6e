package repository

//go:generate mockgen -source=price_ledger.go -destination=../../../tests/mock/repository/price_ledger.go -package=repositorymock

import (
	"context"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/infra"
	"pricewatch/internal/infra/repository/converter"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PriceLedgerWriteQueries interface {
	GetPriceLedger(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.PriceLedgers, error)
	InsertPriceLedger(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPriceLedgerParams) (int64, error)
	UpdatePriceLedger(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePriceLedgerParams) (int64, error)
}

type PriceLedgerRepository struct {
	queries PriceLedgerWriteQueries
	db      sqlc.DBTX
}

func NewPriceLedgerRepository(queries PriceLedgerWriteQueries, db sqlc.DBTX) *PriceLedgerRepository {
	return &PriceLedgerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PriceLedgerRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*priceledger.Ledger, error) {
	row, err := r.queries.GetPriceLedger(ctx, r.db, productID)
	if pgconv.IsNoRows(err) {
		return priceledger.Empty(productID), nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price ledger", err)
	}
	l, err := converter.PriceLedgerFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode price ledger", err, infra.KindDBFailure)
	}
	return l, nil
}

// Save inserts a ledger read at version 0 and otherwise swaps it in only
// if nobody bumped the version in between. Losing either race is a CONFLICT.
func (r *PriceLedgerRepository) Save(ctx context.Context, l *priceledger.Ledger) error {
	payload, err := converter.EncodePrices(l.Prices())
	if err != nil {
		return infra.WrapRepoErr("failed to encode price ledger", err, infra.KindDBFailure)
	}

	var n int64
	if !l.Exists() {
		n, err = r.queries.InsertPriceLedger(ctx, r.db, sqlc.InsertPriceLedgerParams{
			ProductID:   l.ProductID(),
			Prices:      payload,
			LastUpdated: pgconv.TimeToPgtype(l.LastUpdated()),
		})
	} else {
		n, err = r.queries.UpdatePriceLedger(ctx, r.db, sqlc.UpdatePriceLedgerParams{
			ProductID:       l.ProductID(),
			Prices:          payload,
			LastUpdated:     pgconv.TimeToPgtype(l.LastUpdated()),
			ExpectedVersion: l.Version(),
		})
	}
	if err != nil {
		return infra.WrapRepoErr("failed to save price ledger", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("price ledger changed since it was read", nil, infra.KindConflict)
	}
	return nil
}
