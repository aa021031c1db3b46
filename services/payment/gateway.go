package payment

import (
	"context"

	"salonbook/models"
)

// Gateway is the opaque boundary to the external payment provider. The rest
// of the system only ever sees an order handle and a verified yes/no.
type Gateway interface {
	// CreateOrder registers a payment order for the given amount (in the
	// gateway's major currency unit) and returns its handle.
	CreateOrder(ctx context.Context, amount float64, receipt string) (*models.PaymentOrder, error)
	// VerifyConfirmation reports whether the client-supplied confirmation
	// payload carries a valid gateway signature.
	VerifyConfirmation(conf models.PaymentConfirmation) bool
}
