package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getPriceLedger = `
SELECT product_id, prices, last_updated, version
FROM price_ledgers
WHERE product_id = $1
`

func (q *Queries) GetPriceLedger(ctx context.Context, db DBTX, productID uuid.UUID) (PriceLedgers, error) {
	row := db.QueryRow(ctx, getPriceLedger, productID)
	var i PriceLedgers
	err := row.Scan(&i.ProductID, &i.Prices, &i.LastUpdated, &i.Version)
	return i, err
}

const insertPriceLedger = `
INSERT INTO price_ledgers (product_id, prices, last_updated, version)
VALUES ($1, $2, $3, 1)
ON CONFLICT (product_id) DO NOTHING
`

type InsertPriceLedgerParams struct {
	ProductID   uuid.UUID
	Prices      []byte
	LastUpdated pgtype.Timestamptz
}

// InsertPriceLedger reports 0 rows when another writer created the ledger first.
func (q *Queries) InsertPriceLedger(ctx context.Context, db DBTX, arg InsertPriceLedgerParams) (int64, error) {
	tag, err := db.Exec(ctx, insertPriceLedger, arg.ProductID, arg.Prices, arg.LastUpdated)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updatePriceLedger = `
UPDATE price_ledgers
SET prices = $2, last_updated = $3, version = version + 1
WHERE product_id = $1 AND version = $4
`

type UpdatePriceLedgerParams struct {
	ProductID       uuid.UUID
	Prices          []byte
	LastUpdated     pgtype.Timestamptz
	ExpectedVersion int64
}

func (q *Queries) UpdatePriceLedger(ctx context.Context, db DBTX, arg UpdatePriceLedgerParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePriceLedger, arg.ProductID, arg.Prices, arg.LastUpdated, arg.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
