package submission

import (
	"math"
	"regexp"
	"strings"
)

const MaxBranchLength = 200

type Price struct {
	value float64
}

func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: v}, nil
}

func (p Price) Value() float64 { return p.value }

var supermarketIDRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// SupermarketID keys a chain inside a product's price ledger.
type SupermarketID struct {
	value string
}

func NewSupermarketID(s string) (SupermarketID, error) {
	s = strings.TrimSpace(s)
	if !supermarketIDRegex.MatchString(s) {
		return SupermarketID{}, ErrInvalidSupermarketID
	}
	return SupermarketID{value: s}, nil
}

func (s SupermarketID) String() string { return s.value }

type GeoPoint struct {
	Lat float64
	Lng float64
}

func NewGeoPoint(lat, lng float64) (*GeoPoint, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) ||
		lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, ErrInvalidGeoPoint
	}
	return &GeoPoint{Lat: lat, Lng: lng}, nil
}

// NewBranch trims the free-text store location. Empty is allowed.
func NewBranch(s string) (string, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxBranchLength {
		return "", ErrBranchTooLong
	}
	return t, nil
}
