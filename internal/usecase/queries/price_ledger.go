package queries

//go:generate mockgen -source=price_ledger.go -destination=../../../tests/mock/queries/price_ledger.go -package=queriesmock

import (
	"context"
	"slices"
	"strings"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/infra"

	"github.com/google/uuid"
)

type PriceLedgerReadStore interface {
	FindByProduct(ctx context.Context, productID uuid.UUID) (*priceledger.Ledger, error)
}

type PriceLedgerQueries interface {
	// GetByProduct returns an empty view at version 0 for a product that
	// has no approved prices yet.
	GetByProduct(ctx context.Context, productID uuid.UUID) (*PriceLedgerView, error)
}

type priceLedgerQueriesImpl struct {
	store PriceLedgerReadStore
}

func NewPriceLedgerQueries(store PriceLedgerReadStore) PriceLedgerQueries {
	return &priceLedgerQueriesImpl{store: store}
}

func (q *priceLedgerQueriesImpl) GetByProduct(ctx context.Context, productID uuid.UUID) (*PriceLedgerView, error) {
	l, err := q.store.FindByProduct(ctx, productID)
	if infra.IsKind(err, infra.KindNotFound) {
		l = priceledger.Empty(productID)
	} else if err != nil {
		return nil, classify(err)
	}
	return toPriceLedgerView(l), nil
}

func toPriceLedgerView(l *priceledger.Ledger) *PriceLedgerView {
	prices := l.Prices()
	entries := make([]*PriceEntryView, 0, len(prices))
	for id, e := range prices {
		entries = append(entries, toPriceEntryView(id, e))
	}
	slices.SortFunc(entries, func(a, b *PriceEntryView) int {
		return strings.Compare(a.SupermarketID, b.SupermarketID)
	})

	view := &PriceLedgerView{
		ProductID:   l.ProductID(),
		Entries:     entries,
		LastUpdated: l.LastUpdated(),
		Version:     l.Version(),
	}
	if c := l.Cheapest(); c != nil {
		view.Cheapest = toPriceEntryView(c.SupermarketID, c.Entry)
	}
	return view
}

func toPriceEntryView(supermarketID string, e priceledger.Entry) *PriceEntryView {
	return &PriceEntryView{
		SupermarketID: supermarketID,
		Price:         e.Price,
		Location:      e.Location,
		UpdatedAt:     e.UpdatedAt,
		Verified:      e.Verified,
	}
}
