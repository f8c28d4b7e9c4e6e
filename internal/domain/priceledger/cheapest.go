package priceledger

type Cheapest struct {
	SupermarketID string
	Entry
}

// CheapestPrice returns the minimum-price entry, or nil for an empty map.
// Equal prices resolve to the lexicographically smallest supermarket id so
// the answer does not depend on map iteration order.
func CheapestPrice(p Prices) *Cheapest {
	var best *Cheapest
	for id, e := range p {
		if best == nil || e.Price < best.Price || (e.Price == best.Price && id < best.SupermarketID) {
			best = &Cheapest{SupermarketID: id, Entry: e}
		}
	}
	return best
}
