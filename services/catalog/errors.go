package catalog

import "errors"

var (
	// ErrServiceNotFound signals a lookup or mutation on an unknown service ID.
	ErrServiceNotFound = errors.New("service not found")
	// ErrPackageNotFound signals a lookup or mutation on an unknown package ID.
	ErrPackageNotFound = errors.New("package not found")
)

// InvalidInputError reports a catalog write rejected before persistence.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func invalidInput(msg string) error {
	return &InvalidInputError{Message: msg}
}
