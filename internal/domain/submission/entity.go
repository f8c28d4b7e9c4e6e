package submission

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Submission is a shopper-asserted price observation awaiting moderation.
// ProductName and ProductImage are display hints copied at submit time and
// are never consulted by the ledger merge.
type Submission struct {
	id                   uuid.UUID
	submitterID          uuid.UUID
	submitterDisplayName string
	productID            uuid.UUID
	productName          string
	productImage         string
	supermarketID        SupermarketID
	branch               string
	price                Price
	geo                  *GeoPoint
	status               Status
	createdAt            time.Time
	reviewedAt           *time.Time
	version              int64
}

type NewParams struct {
	SubmitterID          uuid.UUID
	SubmitterDisplayName string
	ProductID            uuid.UUID
	ProductName          string
	ProductImage         string
	SupermarketID        string
	Branch               string
	Price                float64
	Geo                  *GeoPoint
}

func New(p NewParams, now time.Time) (*Submission, error) {
	if p.SubmitterID == uuid.Nil {
		return nil, ErrMissingSubmitter
	}
	if p.ProductID == uuid.Nil {
		return nil, ErrMissingProduct
	}
	name := strings.TrimSpace(p.ProductName)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	sm, err := NewSupermarketID(p.SupermarketID)
	if err != nil {
		return nil, err
	}
	price, err := NewPrice(p.Price)
	if err != nil {
		return nil, err
	}
	branch, err := NewBranch(p.Branch)
	if err != nil {
		return nil, err
	}
	if p.Geo != nil {
		if _, err := NewGeoPoint(p.Geo.Lat, p.Geo.Lng); err != nil {
			return nil, err
		}
	}

	return &Submission{
		id:                   uuid.New(),
		submitterID:          p.SubmitterID,
		submitterDisplayName: strings.TrimSpace(p.SubmitterDisplayName),
		productID:            p.ProductID,
		productName:          name,
		productImage:         strings.TrimSpace(p.ProductImage),
		supermarketID:        sm,
		branch:               branch,
		price:                price,
		geo:                  p.Geo,
		status:               StatusPending,
		createdAt:            now,
		version:              1,
	}, nil
}

type Snapshot struct {
	ID                   uuid.UUID
	SubmitterID          uuid.UUID
	SubmitterDisplayName string
	ProductID            uuid.UUID
	ProductName          string
	ProductImage         string
	SupermarketID        string
	Branch               string
	Price                float64
	Geo                  *GeoPoint
	Status               string
	CreatedAt            time.Time
	ReviewedAt           *time.Time
	Version              int64
}

// Reconstruct rebuilds a persisted submission without re-running creation rules.
func Reconstruct(s Snapshot) (*Submission, error) {
	status, err := ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}
	return &Submission{
		id:                   s.ID,
		submitterID:          s.SubmitterID,
		submitterDisplayName: s.SubmitterDisplayName,
		productID:            s.ProductID,
		productName:          s.ProductName,
		productImage:         s.ProductImage,
		supermarketID:        SupermarketID{value: s.SupermarketID},
		branch:               s.Branch,
		price:                Price{value: s.Price},
		geo:                  s.Geo,
		status:               status,
		createdAt:            s.CreatedAt,
		reviewedAt:           s.ReviewedAt,
		version:              s.Version,
	}, nil
}

func (s *Submission) Approve(now time.Time) error {
	return s.transition(StatusApproved, now)
}

func (s *Submission) Reject(now time.Time) error {
	return s.transition(StatusRejected, now)
}

// pending is the only state with outgoing edges; reviewedAt is set iff terminal.
func (s *Submission) transition(to Status, now time.Time) error {
	if s.status != StatusPending {
		return ErrNotPending
	}
	s.status = to
	reviewed := now
	s.reviewedAt = &reviewed
	return nil
}

func (s *Submission) Snapshot() Snapshot {
	return Snapshot{
		ID:                   s.id,
		SubmitterID:          s.submitterID,
		SubmitterDisplayName: s.submitterDisplayName,
		ProductID:            s.productID,
		ProductName:          s.productName,
		ProductImage:         s.productImage,
		SupermarketID:        s.supermarketID.String(),
		Branch:               s.branch,
		Price:                s.price.Value(),
		Geo:                  s.geo,
		Status:               s.status.String(),
		CreatedAt:            s.createdAt,
		ReviewedAt:           s.reviewedAt,
		Version:              s.version,
	}
}

func (s *Submission) ID() uuid.UUID                { return s.id }
func (s *Submission) SubmitterID() uuid.UUID       { return s.submitterID }
func (s *Submission) SubmitterDisplayName() string { return s.submitterDisplayName }
func (s *Submission) ProductID() uuid.UUID         { return s.productID }
func (s *Submission) ProductName() string          { return s.productName }
func (s *Submission) ProductImage() string         { return s.productImage }
func (s *Submission) SupermarketID() SupermarketID { return s.supermarketID }
func (s *Submission) Branch() string               { return s.branch }
func (s *Submission) Price() Price                 { return s.price }
func (s *Submission) Geo() *GeoPoint               { return s.geo }
func (s *Submission) Status() Status               { return s.status }
func (s *Submission) CreatedAt() time.Time         { return s.createdAt }
func (s *Submission) ReviewedAt() *time.Time       { return s.reviewedAt }
func (s *Submission) Version() int64               { return s.version }
