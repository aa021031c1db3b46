package checkout

import (
	"context"
	"time"

	bookingRepo "salonbook/database/repository/booking"
	"salonbook/models"
	"salonbook/services/cart"
	"salonbook/services/payment"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCheckoutService implements CheckoutService. The booking snapshot is
// copied verbatim from the cart; it is never re-read from the catalog.
type DefaultCheckoutService struct {
	Carts    cart.CartService
	Bookings bookingRepo.BookingRepository
	Gateway  payment.Gateway
}

// Submit validates the form, gates card payments on gateway verification,
// creates the booking and clears the cart.
func (s *DefaultCheckoutService) Submit(ctx context.Context, cartID string, input SubmitInput) (*models.Booking, error) {
	if verr := validate(input); verr != nil {
		return nil, verr
	}

	c, err := s.Carts.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, &ValidationError{Fields: map[string]string{"cart": "Cart is empty"}}
	}

	booking := &models.Booking{
		ID: uuid.New().String(),
		Customer: models.Customer{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
		},
		Appointment: models.Appointment{
			Date:  input.Date,
			Time:  input.Time,
			Notes: input.Notes,
		},
		Services:      snapshotItems(c.Items),
		Total:         c.Total(),
		PaymentMethod: input.PaymentMethod,
		Status:        models.BookingStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if input.PaymentMethod == models.PaymentMethodCard {
		if input.Payment == nil {
			return nil, &PaymentError{Reason: "missing payment confirmation"}
		}
		if !s.Gateway.VerifyConfirmation(*input.Payment) {
			return nil, &PaymentError{Reason: "payment verification failed"}
		}
		booking.Payment = models.PaymentReference{
			OrderID:   input.Payment.OrderID,
			PaymentID: input.Payment.PaymentID,
		}
	}

	if err := s.Bookings.Create(booking); err != nil {
		return nil, err
	}

	// The booking stands even if the cart cannot be cleared; the session
	// expires on its own.
	if err := s.Carts.ClearCart(ctx, cartID); err != nil {
		utils.GetLogger().Warn("failed to clear cart after checkout",
			zap.String("cartID", cartID), zap.Error(err))
	}

	return booking, nil
}

// snapshotItems copies the cart's display labels and prices into the
// booking, dropping the catalog-derived line item IDs.
func snapshotItems(items []models.CartLineItem) []models.BookingLineItem {
	snapshot := make([]models.BookingLineItem, 0, len(items))
	for _, item := range items {
		snapshot = append(snapshot, models.BookingLineItem{
			ServiceName: item.ServiceName,
			OptionName:  item.OptionName,
			Price:       item.Price,
		})
	}
	return snapshot
}
