//go:build unit || e2e

package builder

import (
	"time"

	"pricewatch/internal/domain/submission"
	"pricewatch/internal/handler/dto/request"
	"pricewatch/internal/usecase/commands"
	"pricewatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type SubmissionBuilder struct {
	ID                   uuid.UUID
	SubmitterID          uuid.UUID
	SubmitterDisplayName string
	ProductID            uuid.UUID
	ProductName          string
	ProductImage         string
	SupermarketID        string
	Branch               string
	Price                float64
	Latitude             *float64
	Longitude            *float64
	Status               submission.Status
	CreatedAt            time.Time
	ReviewedAt           *time.Time
	Version              int64
}

func NewSubmissionBuilder() *SubmissionBuilder {
	lat, lng := -1.2921, 36.8219
	return &SubmissionBuilder{
		ID:                   uuid.New(),
		SubmitterID:          uuid.New(),
		SubmitterDisplayName: "Wanjiku",
		ProductID:            uuid.New(),
		ProductName:          "Maziwa Fresh 500ml",
		SupermarketID:        "naivas",
		Branch:               "Westlands",
		Price:                65,
		Latitude:             &lat,
		Longitude:            &lng,
		Status:               submission.StatusPending,
		CreatedAt:            time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Version:              1,
	}
}

func (b *SubmissionBuilder) With(mutate func(*SubmissionBuilder)) *SubmissionBuilder {
	mutate(b)
	return b
}

func (b *SubmissionBuilder) WithSupermarket(id string, price float64) *SubmissionBuilder {
	b.SupermarketID = id
	b.Price = price
	return b
}

func (b *SubmissionBuilder) WithProduct(id uuid.UUID) *SubmissionBuilder {
	b.ProductID = id
	return b
}

func (b *SubmissionBuilder) WithSubmitter(id uuid.UUID) *SubmissionBuilder {
	b.SubmitterID = id
	return b
}

func (b *SubmissionBuilder) Reviewed(status submission.Status, at time.Time) *SubmissionBuilder {
	b.Status = status
	b.ReviewedAt = &at
	b.Version++
	return b
}

// BuildDomain reconstructs the submission as if loaded from a store.
func (b *SubmissionBuilder) BuildDomain() *submission.Submission {
	var geo *submission.GeoPoint
	if b.Latitude != nil && b.Longitude != nil {
		geo = &submission.GeoPoint{Lat: *b.Latitude, Lng: *b.Longitude}
	}
	s, err := submission.Reconstruct(submission.Snapshot{
		ID:                   b.ID,
		SubmitterID:          b.SubmitterID,
		SubmitterDisplayName: b.SubmitterDisplayName,
		ProductID:            b.ProductID,
		ProductName:          b.ProductName,
		ProductImage:         b.ProductImage,
		SupermarketID:        b.SupermarketID,
		Branch:               b.Branch,
		Price:                b.Price,
		Geo:                  geo,
		Status:               b.Status.String(),
		CreatedAt:            b.CreatedAt,
		ReviewedAt:           b.ReviewedAt,
		Version:              b.Version,
	})
	if err != nil {
		panic(err)
	}
	return s
}

func (b *SubmissionBuilder) BuildView() *queries.SubmissionView {
	return &queries.SubmissionView{
		ID:                   b.ID,
		SubmitterID:          b.SubmitterID,
		SubmitterDisplayName: b.SubmitterDisplayName,
		ProductID:            b.ProductID,
		ProductName:          b.ProductName,
		ProductImage:         b.ProductImage,
		SupermarketID:        b.SupermarketID,
		Branch:               b.Branch,
		Price:                b.Price,
		Latitude:             b.Latitude,
		Longitude:            b.Longitude,
		Status:               b.Status.String(),
		CreatedAt:            b.CreatedAt,
		ReviewedAt:           b.ReviewedAt,
		Version:              b.Version,
	}
}

func (b *SubmissionBuilder) BuildCreateRequestDTO() request.CreateSubmissionRequest {
	return request.CreateSubmissionRequest{
		ProductID:     b.ProductID,
		ProductName:   b.ProductName,
		ProductImage:  b.ProductImage,
		SupermarketID: b.SupermarketID,
		Branch:        b.Branch,
		Price:         b.Price,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
	}
}

func (b *SubmissionBuilder) BuildCreateCommand() commands.CreateSubmissionRequest {
	return commands.CreateSubmissionRequest{
		ProductID:     b.ProductID,
		ProductName:   b.ProductName,
		ProductImage:  b.ProductImage,
		SupermarketID: b.SupermarketID,
		Branch:        b.Branch,
		Price:         b.Price,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
	}
}
