package converter

import (
	"encoding/json"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/pkg/pgconv"
)

func PriceLedgerFromRow(row sqlc.PriceLedgers) (*priceledger.Ledger, error) {
	prices := priceledger.Prices{}
	if len(row.Prices) > 0 {
		if err := json.Unmarshal(row.Prices, &prices); err != nil {
			return nil, errs.Wrap(err, "decode price ledger")
		}
	}
	return priceledger.Reconstruct(row.ProductID, prices, pgconv.TimeFromPgtype(row.LastUpdated), row.Version), nil
}

func EncodePrices(p priceledger.Prices) ([]byte, error) {
	if p == nil {
		p = priceledger.Prices{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, errs.Wrap(err, "encode price ledger")
	}
	return b, nil
}
