package cart

import (
	"context"

	"salonbook/models"
)

// CartService manages cart sessions. A cart belongs to exactly one browsing
// session, addressed by the cart ID handed out at creation, and expires
// after a period of inactivity.
type CartService interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
	GetCart(ctx context.Context, cartID string) (*models.Cart, error)
	AddServiceItem(ctx context.Context, cartID, serviceID, optionID string) (*models.Cart, error)
	AddPackageItem(ctx context.Context, cartID, packageID string) (*models.Cart, error)
	// RemoveItem removes the first line item with the given ID. Duplicate
	// line items sharing an ID are removed one at a time.
	RemoveItem(ctx context.Context, cartID, lineItemID string) (*models.Cart, error)
	ClearCart(ctx context.Context, cartID string) error
}
