package response

import (
	"time"

	"pricewatch/internal/usecase/commands"
	"pricewatch/internal/usecase/queries"
)

type SubmissionResponse struct {
	ID                   string     `json:"id"`
	SubmitterID          string     `json:"submitter_id"`
	SubmitterDisplayName string     `json:"submitter_display_name"`
	ProductID            string     `json:"product_id"`
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

func FromSubmissionView(v *queries.SubmissionView) *SubmissionResponse {
	res := &SubmissionResponse{}
	copyView(res, v)
	return res
}

type SubmissionListResponse struct {
	Items      []*SubmissionResponse `json:"items"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

func FromSubmissionList(items []*queries.SubmissionView, next *queries.Cursor) *SubmissionListResponse {
	res := &SubmissionListResponse{Items: make([]*SubmissionResponse, len(items))}
	for i, it := range items {
		res.Items[i] = FromSubmissionView(it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type CreateSubmissionResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Version int64  `json:"version"`
}

// ModerationResponse answers approve/reject. AlreadyReviewed marks the
// benign repeat of a decision that had already committed.
type ModerationResponse struct {
	SubmissionID    string              `json:"submission_id"`
	Status          string              `json:"status"`
	ReviewedAt      *time.Time          `json:"reviewed_at,omitempty"`
	Version         int64               `json:"version"`
	AlreadyReviewed bool                `json:"already_reviewed"`
	Submission      *SubmissionResponse `json:"submission,omitempty"`
}

func FromReviewResult(r *commands.ReviewResult) *ModerationResponse {
	reviewedAt := r.ReviewedAt
	return &ModerationResponse{
		SubmissionID: r.SubmissionID.String(),
		Status:       r.Status.String(),
		ReviewedAt:   &reviewedAt,
		Version:      r.Version,
	}
}

func AlreadyReviewed(v *queries.SubmissionView) *ModerationResponse {
	return &ModerationResponse{
		SubmissionID:    v.ID.String(),
		Status:          v.Status,
		ReviewedAt:      v.ReviewedAt,
		Version:         v.Version,
		AlreadyReviewed: true,
		Submission:      FromSubmissionView(v),
	}
}
