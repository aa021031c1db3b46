package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"salonbook/models"
	"salonbook/services/catalog"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisCartService implements CartService with cart sessions held in redis
// under a TTL. The price of every line item is resolved from the catalog at
// the moment it is added; later catalog edits never touch an existing cart.
type RedisCartService struct {
	Client  *redis.Client
	Catalog catalog.CatalogService
	TTL     time.Duration
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

// CreateCart starts a new, empty cart session.
func (s *RedisCartService) CreateCart(ctx context.Context) (*models.Cart, error) {
	c := &models.Cart{
		ID:    uuid.New().String(),
		Items: []models.CartLineItem{},
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCart loads a cart session by ID.
func (s *RedisCartService) GetCart(ctx context.Context, cartID string) (*models.Cart, error) {
	data, err := s.Client.Get(ctx, cartKey(cartID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", cartID, err)
	}
	return &c, nil
}

// AddServiceItem resolves the service option from the catalog and appends a
// priced line item. Adding the same option twice yields two line items.
func (s *RedisCartService) AddServiceItem(ctx context.Context, cartID, serviceID, optionID string) (*models.Cart, error) {
	c, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	svc, err := s.Catalog.GetService(serviceID)
	if err != nil {
		return nil, err
	}
	opt := svc.FindOption(optionID)
	if opt == nil {
		return nil, ErrOptionNotFound
	}

	c.AddServiceItem(svc, opt)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddPackageItem resolves the package from the catalog and appends a priced
// line item labelled as the complete package.
func (s *RedisCartService) AddPackageItem(ctx context.Context, cartID, packageID string) (*models.Cart, error) {
	c, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.Catalog.GetPackage(packageID)
	if err != nil {
		return nil, err
	}

	c.AddPackageItem(pkg)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem removes the first line item with the given ID.
func (s *RedisCartService) RemoveItem(ctx context.Context, cartID, lineItemID string) (*models.Cart, error) {
	c, err := s.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !c.RemoveItem(lineItemID) {
		return nil, ErrItemNotFound
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ClearCart empties the cart session, keeping it alive for further browsing.
func (s *RedisCartService) ClearCart(ctx context.Context, cartID string) error {
	c, err := s.GetCart(ctx, cartID)
	if err != nil {
		return err
	}
	c.Clear()
	return s.save(ctx, c)
}

// save persists the cart and refreshes its TTL.
func (s *RedisCartService) save(ctx context.Context, c *models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", c.ID, err)
	}
	if err := s.Client.Set(ctx, cartKey(c.ID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store cart %s: %w", c.ID, err)
	}
	return nil
}
