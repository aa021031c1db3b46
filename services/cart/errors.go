package cart

import "errors"

var (
	// ErrCartNotFound signals an unknown or expired cart session.
	ErrCartNotFound = errors.New("cart not found or expired")
	// ErrItemNotFound signals a remove on a line item the cart does not hold.
	ErrItemNotFound = errors.New("cart item not found")
	// ErrOptionNotFound signals an add referencing an option the service
	// does not carry.
	ErrOptionNotFound = errors.New("service option not found")
)
