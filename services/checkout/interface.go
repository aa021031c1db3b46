package checkout

import (
	"context"

	"salonbook/models"
)

// SubmitInput is the checkout form plus, for card payments, the gateway
// confirmation forwarded by the client.
type SubmitInput struct {
	Name          string                      `json:"name"`
	Email         string                      `json:"email"`
	Phone         string                      `json:"phone"`
	Date          string                      `json:"date"`
	Time          string                      `json:"time"`
	Notes         string                      `json:"notes"`
	PaymentMethod string                      `json:"paymentMethod"`
	Payment       *models.PaymentConfirmation `json:"payment,omitempty"`
}

// CheckoutService turns a cart and a filled form into a booking.
type CheckoutService interface {
	// Submit validates the form, settles payment where required, creates
	// the booking and clears the cart. On any failure no booking exists
	// and the cart is left untouched.
	Submit(ctx context.Context, cartID string, input SubmitInput) (*models.Booking, error)
}
