package readstore

import (
	"context"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/infra"
	"pricewatch/internal/infra/repository/converter"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PriceLedgerViewQueries interface {
	GetPriceLedger(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.PriceLedgers, error)
}

type PriceLedgerReadStore struct {
	queries PriceLedgerViewQueries
	db      sqlc.DBTX
}

func NewPriceLedgerReadStore(queries PriceLedgerViewQueries, db sqlc.DBTX) *PriceLedgerReadStore {
	return &PriceLedgerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PriceLedgerReadStore) FindByProduct(ctx context.Context, productID uuid.UUID) (*priceledger.Ledger, error) {
	row, err := r.queries.GetPriceLedger(ctx, r.db, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("price ledger not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get price ledger", err)
	}
	l, err := converter.PriceLedgerFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode price ledger", err, infra.KindDBFailure)
	}
	return l, nil
}
