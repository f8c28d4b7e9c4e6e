package errs

import "errors"

// Moderation error taxonomy. Usecases mark lower-level errors with one of
// these so handlers can branch with errors.Is.
var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidState           = errors.New("invalid state")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrValidation             = errors.New("validation error")

	ErrForbidden = errors.New("forbidden")
)
