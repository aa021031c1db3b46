package booking

import "errors"

var (
	// ErrNotFound signals an operation on an unknown booking ID.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidStatus signals a target status outside accepted/rejected.
	ErrInvalidStatus = errors.New("status must be accepted or rejected")
	// ErrAlreadyDecided signals a status update on a booking that already
	// left the pending state.
	ErrAlreadyDecided = errors.New("booking has already been decided")
)
