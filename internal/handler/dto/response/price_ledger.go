package response

import (
	"time"

	"pricewatch/internal/usecase/queries"
)

type PriceEntryResponse struct {
	SupermarketID string    `json:"supermarket_id"`
	Price         float64   `json:"price"`
	Location      string    `json:"location"`
	UpdatedAt     time.Time `json:"updated_at"`
	Verified      bool      `json:"verified"`
}

type PriceLedgerResponse struct {
	ProductID   string                `json:"product_id"`
	Entries     []*PriceEntryResponse `json:"entries"`
	Cheapest    *PriceEntryResponse   `json:"cheapest"`
	LastUpdated *time.Time            `json:"last_updated,omitempty"`
	Version     int64                 `json:"version"`
}

func FromPriceLedgerView(v *queries.PriceLedgerView) *PriceLedgerResponse {
	res := &PriceLedgerResponse{
		ProductID: v.ProductID.String(),
		Entries:   make([]*PriceEntryResponse, len(v.Entries)),
		Version:   v.Version,
	}
	for i, e := range v.Entries {
		res.Entries[i] = fromPriceEntryView(e)
	}
	if v.Cheapest != nil {
		res.Cheapest = fromPriceEntryView(v.Cheapest)
	}
	if !v.LastUpdated.IsZero() {
		t := v.LastUpdated
		res.LastUpdated = &t
	}
	return res
}

func fromPriceEntryView(e *queries.PriceEntryView) *PriceEntryResponse {
	res := &PriceEntryResponse{}
	copyView(res, e)
	return res
}
