package submission

import "errors"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

var (
	ErrInvalidStatus        = errors.New("invalid submission status")
	ErrNotPending           = errors.New("submission has already been reviewed")
	ErrInvalidPrice         = errors.New("price must be a positive finite number")
	ErrInvalidSupermarketID = errors.New("supermarket id must be a lowercase slug")
	ErrInvalidGeoPoint      = errors.New("latitude must be within [-90,90] and longitude within [-180,180]")
	ErrEmptyProductName     = errors.New("product name cannot be empty")
	ErrMissingProduct       = errors.New("product id is required")
	ErrMissingSubmitter     = errors.New("submitter id is required")
	ErrBranchTooLong        = errors.New("branch exceeds maximum length")
)
