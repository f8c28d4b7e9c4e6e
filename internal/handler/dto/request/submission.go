package request

import (
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateSubmissionRequest struct {
	ProductID     uuid.UUID `json:"product_id" binding:"required"`
	ProductName   string    `json:"product_name" binding:"required,max=200"`
	ProductImage  string    `json:"product_image" binding:"omitempty,max=2048"`
	SupermarketID string    `json:"supermarket_id" binding:"required,max=64"`
	Branch        string    `json:"branch" binding:"omitempty,max=200"`
	Price         float64   `json:"price" binding:"required,gt=0"`
	Latitude      *float64  `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude     *float64  `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

func (r *CreateSubmissionRequest) ToCommand() (commands.CreateSubmissionRequest, error) {
	var cmd commands.CreateSubmissionRequest
	if err := copier.Copy(&cmd, r); err != nil {
		return cmd, errs.Wrap(err, "map create submission request")
	}
	return cmd, nil
}

// ReviewSubmissionRequest is the optional approve/reject body. Version is
// the submission version the moderator was looking at.
type ReviewSubmissionRequest struct {
	Version *int64 `json:"version" binding:"omitempty,min=1"`
}
