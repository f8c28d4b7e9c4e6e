package queries

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionView is the read model of a price submission.
type SubmissionView struct {
	ID                   uuid.UUID  `json:"id"`
	SubmitterID          uuid.UUID  `json:"submitter_id"`
	SubmitterDisplayName string     `json:"submitter_display_name"`
	ProductID            uuid.UUID  `json:"product_id"`
	ProductName          string     `json:"product_name"`
	ProductImage         string     `json:"product_image,omitempty"`
	SupermarketID        string     `json:"supermarket_id"`
	Branch               string     `json:"branch,omitempty"`
	Price                float64    `json:"price"`
	Latitude             *float64   `json:"latitude,omitempty"`
	Longitude            *float64   `json:"longitude,omitempty"`
	Status               string     `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	ReviewedAt           *time.Time `json:"reviewed_at,omitempty"`
	Version              int64      `json:"version"`
}

type PriceEntryView struct {
	SupermarketID string    `json:"supermarket_id"`
	Price         float64   `json:"price"`
	Location      string    `json:"location"`
	UpdatedAt     time.Time `json:"updated_at"`
	Verified      bool      `json:"verified"`
}

// PriceLedgerView lists entries ordered by supermarket id. Cheapest is nil
// when no price has been approved.
type PriceLedgerView struct {
	ProductID   uuid.UUID         `json:"product_id"`
	Entries     []*PriceEntryView `json:"entries"`
	Cheapest    *PriceEntryView   `json:"cheapest"`
	LastUpdated time.Time         `json:"last_updated"`
	Version     int64             `json:"version"`
}

type RewardView struct {
	UserID            uuid.UUID `json:"user_id"`
	DisplayName       string    `json:"display_name"`
	Points            int64     `json:"points"`
	ContributionCount int64     `json:"contribution_count"`
}
