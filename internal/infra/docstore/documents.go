package docstore

import (
	"time"

	"pricewatch/internal/domain/priceledger"
	"pricewatch/internal/domain/reward"
	"pricewatch/internal/domain/submission"
	"pricewatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type submissionDoc struct {
	ID                   uuid.UUID  `json:"id"`
	SubmitterID          uuid.UUID  `json:"submitterId"`
	SubmitterDisplayName string     `json:"submitterDisplayName"`
	ProductID            uuid.UUID  `json:"productId"`
	ProductName          string     `json:"productName"`
	ProductImage         string     `json:"productImage,omitempty"`
	SupermarketID        string     `json:"supermarketId"`
	Branch               string     `json:"branch,omitempty"`
	Price                float64    `json:"price"`
	Latitude             *float64   `json:"latitude,omitempty"`
	Longitude            *float64   `json:"longitude,omitempty"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"createdAt"`
	ReviewedAt           *time.Time `json:"reviewedAt,omitempty"`
	Version              int64      `json:"version"`
}

func submissionToDoc(s *submission.Submission) submissionDoc {
	snap := s.Snapshot()
	d := submissionDoc{
		ID:                   snap.ID,
		SubmitterID:          snap.SubmitterID,
		SubmitterDisplayName: snap.SubmitterDisplayName,
		ProductID:            snap.ProductID,
		ProductName:          snap.ProductName,
		ProductImage:         snap.ProductImage,
		SupermarketID:        snap.SupermarketID,
		Branch:               snap.Branch,
		Price:                snap.Price,
		Status:               snap.Status,
		CreatedAt:            snap.CreatedAt,
		ReviewedAt:           snap.ReviewedAt,
		Version:              snap.Version,
	}
	if g := snap.Geo; g != nil {
		lat, lng := g.Lat, g.Lng
		d.Latitude, d.Longitude = &lat, &lng
	}
	return d
}

func (d submissionDoc) toDomain() (*submission.Submission, error) {
	var geo *submission.GeoPoint
	if d.Latitude != nil && d.Longitude != nil {
		geo = &submission.GeoPoint{Lat: *d.Latitude, Lng: *d.Longitude}
	}
	return submission.Reconstruct(submission.Snapshot{
		ID:                   d.ID,
		SubmitterID:          d.SubmitterID,
		SubmitterDisplayName: d.SubmitterDisplayName,
		ProductID:            d.ProductID,
		ProductName:          d.ProductName,
		ProductImage:         d.ProductImage,
		SupermarketID:        d.SupermarketID,
		Branch:               d.Branch,
		Price:                d.Price,
		Geo:                  geo,
		Status:               d.Status,
		CreatedAt:            d.CreatedAt,
		ReviewedAt:           d.ReviewedAt,
		Version:              d.Version,
	})
}

func (d submissionDoc) toView() *queries.SubmissionView {
	return &queries.SubmissionView{
		ID:                   d.ID,
		SubmitterID:          d.SubmitterID,
		SubmitterDisplayName: d.SubmitterDisplayName,
		ProductID:            d.ProductID,
		ProductName:          d.ProductName,
		ProductImage:         d.ProductImage,
		SupermarketID:        d.SupermarketID,
		Branch:               d.Branch,
		Price:                d.Price,
		Latitude:             d.Latitude,
		Longitude:            d.Longitude,
		Status:               d.Status,
		CreatedAt:            d.CreatedAt,
		ReviewedAt:           d.ReviewedAt,
		Version:              d.Version,
	}
}

type ledgerDoc struct {
	ProductID   uuid.UUID          `json:"productId"`
	Prices      priceledger.Prices `json:"prices"`
	LastUpdated time.Time          `json:"lastUpdated"`
	Version     int64              `json:"version"`
}

func (d ledgerDoc) toDomain() *priceledger.Ledger {
	return priceledger.Reconstruct(d.ProductID, d.Prices, d.LastUpdated, d.Version)
}

type userDoc struct {
	ID                uuid.UUID `json:"id"`
	DisplayName       string    `json:"displayName"`
	Points            int64     `json:"points"`
	ContributionCount int64     `json:"contributionCount"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
	Version           int64     `json:"version"`
}

func (d userDoc) balance() reward.Balance {
	return reward.Balance{Points: d.Points, ContributionCount: d.ContributionCount}
}

func (d userDoc) toView() *queries.RewardView {
	return &queries.RewardView{
		UserID:            d.ID,
		DisplayName:       d.DisplayName,
		Points:            d.Points,
		ContributionCount: d.ContributionCount,
	}
}

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
	outboxStatusDead    = "dead"
)

type outboxDoc struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Key       string    `json:"key"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"runAt"`
	Attempts  int       `json:"attempts"`
	Status    string    `json:"status"`
	LastError string    `json:"lastError,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int64     `json:"version"`
}
