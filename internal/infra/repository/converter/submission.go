package converter

import (
	"pricewatch/internal/domain/submission"
	"pricewatch/internal/infra/sqlc"
	"pricewatch/internal/pkg/pgconv"
	"pricewatch/internal/usecase/queries"
)

func SubmissionToCreateParams(s *submission.Submission) sqlc.CreateSubmissionParams {
	snap := s.Snapshot()
	var lat, lng *float64
	if g := snap.Geo; g != nil {
		lat, lng = &g.Lat, &g.Lng
	}
	return sqlc.CreateSubmissionParams{
		ID:                   snap.ID,
		SubmitterID:          snap.SubmitterID,
		SubmitterDisplayName: snap.SubmitterDisplayName,
		ProductID:            snap.ProductID,
		ProductName:          snap.ProductName,
		ProductImage:         snap.ProductImage,
		SupermarketID:        snap.SupermarketID,
		Branch:               snap.Branch,
		Price:                snap.Price,
		Latitude:             pgconv.Float8FromPtr(lat),
		Longitude:            pgconv.Float8FromPtr(lng),
		CreatedAt:            pgconv.TimeToPgtype(snap.CreatedAt),
		Version:              snap.Version,
	}
}

func SubmissionFromRow(row sqlc.Submissions) (*submission.Submission, error) {
	var geo *submission.GeoPoint
	if row.Latitude.Valid && row.Longitude.Valid {
		geo = &submission.GeoPoint{Lat: row.Latitude.Float64, Lng: row.Longitude.Float64}
	}
	return submission.Reconstruct(submission.Snapshot{
		ID:                   row.ID,
		SubmitterID:          row.SubmitterID,
		SubmitterDisplayName: row.SubmitterDisplayName,
		ProductID:            row.ProductID,
		ProductName:          row.ProductName,
		ProductImage:         row.ProductImage,
		SupermarketID:        row.SupermarketID,
		Branch:               row.Branch,
		Price:                row.Price,
		Geo:                  geo,
		Status:               row.Status,
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		ReviewedAt:           pgconv.TimePtrFromPgtype(row.ReviewedAt),
		Version:              row.Version,
	})
}

func SubmissionViewFromRow(row sqlc.Submissions) *queries.SubmissionView {
	return &queries.SubmissionView{
		ID:                   row.ID,
		SubmitterID:          row.SubmitterID,
		SubmitterDisplayName: row.SubmitterDisplayName,
		ProductID:            row.ProductID,
		ProductName:          row.ProductName,
		ProductImage:         row.ProductImage,
		SupermarketID:        row.SupermarketID,
		Branch:               row.Branch,
		Price:                row.Price,
		Latitude:             pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:            pgconv.Float64PtrFromPgtype(row.Longitude),
		Status:               row.Status,
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		ReviewedAt:           pgconv.TimePtrFromPgtype(row.ReviewedAt),
		Version:              row.Version,
	}
}

func SubmissionViewsFromRows(rows []sqlc.Submissions) []*queries.SubmissionView {
	views := make([]*queries.SubmissionView, len(rows))
	for i, row := range rows {
		views[i] = SubmissionViewFromRow(row)
	}
	return views
}
