package priceledger

import (
	"errors"
	"maps"
	"time"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("ledger price cannot be negative")

// Entry is one supermarket's current price for a product.
type Entry struct {
	Price     float64   `json:"price"`
	Location  string    `json:"location"`
	UpdatedAt time.Time `json:"updatedAt"`
	Verified  bool      `json:"verified"`
}

// Prices maps supermarket id to its entry. A nil map is an empty ledger.
type Prices map[string]Entry

// Merge returns a copy of existing with only supermarketID overwritten.
// existing is never mutated.
func Merge(existing Prices, supermarketID string, e Entry) Prices {
	merged := make(Prices, len(existing)+1)
	maps.Copy(merged, existing)
	merged[supermarketID] = e
	return merged
}

// Ledger is the per-product price document. Version is the optimistic
// concurrency token; zero means the document does not exist yet.
type Ledger struct {
	productID   uuid.UUID
	prices      Prices
	lastUpdated time.Time
	version     int64
}

func Empty(productID uuid.UUID) *Ledger {
	return &Ledger{productID: productID, prices: Prices{}}
}

func Reconstruct(productID uuid.UUID, prices Prices, lastUpdated time.Time, version int64) *Ledger {
	if prices == nil {
		prices = Prices{}
	}
	return &Ledger{
		productID:   productID,
		prices:      prices,
		lastUpdated: lastUpdated,
		version:     version,
	}
}

// WithPrice produces the next ledger state for a verified price write.
// The receiver is left unchanged so a failed commit can be discarded.
func (l *Ledger) WithPrice(supermarketID string, price float64, location string, now time.Time) (*Ledger, error) {
	if price < 0 {
		return nil, ErrNegativePrice
	}
	return &Ledger{
		productID: l.productID,
		prices: Merge(l.prices, supermarketID, Entry{
			Price:     price,
			Location:  location,
			UpdatedAt: now,
			Verified:  true,
		}),
		lastUpdated: now,
		version:     l.version,
	}, nil
}

func (l *Ledger) ProductID() uuid.UUID   { return l.productID }
func (l *Ledger) LastUpdated() time.Time { return l.lastUpdated }
func (l *Ledger) Version() int64         { return l.version }
func (l *Ledger) Exists() bool           { return l.version > 0 }

// Prices returns a copy of the supermarket map.
func (l *Ledger) Prices() Prices {
	return maps.Clone(l.prices)
}

func (l *Ledger) Cheapest() *Cheapest {
	return CheapestPrice(l.prices)
}
