package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Submissions struct {
	ID                   uuid.UUID
	SubmitterID          uuid.UUID
	SubmitterDisplayName string
	ProductID            uuid.UUID
	ProductName          string
	ProductImage         string
	SupermarketID        string
	Branch               string
	Price                float64
	Latitude             pgtype.Float8
	Longitude            pgtype.Float8
	Status               string
	CreatedAt            pgtype.Timestamptz
	ReviewedAt           pgtype.Timestamptz
	Version              int64
}

type PriceLedgers struct {
	ProductID   uuid.UUID
	Prices      []byte
	LastUpdated pgtype.Timestamptz
	Version     int64
}

type Users struct {
	ID                uuid.UUID
	DisplayName       string
	Points            int64
	ContributionCount int64
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type OutboxEvents struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	EventKey  string
	Payload   []byte
	RunAt     pgtype.Timestamptz
	Attempts  int32
	Status    string
	LastError pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
