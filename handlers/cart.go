package handlers

import (
	"errors"
	"net/http"

	"salonbook/models"
	"salonbook/services/cart"
	"salonbook/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the cart session endpoints.
type CartHandler struct {
	Svc cart.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Svc: svc}
}

// addItemInput selects either a service option or a whole package.
type addItemInput struct {
	Type      string `json:"type" binding:"required"`
	ServiceID string `json:"serviceId"`
	OptionID  string `json:"optionId"`
	PackageID string `json:"packageId"`
}

func cartResponse(c *gin.Context, status int, crt *models.Cart) {
	c.JSON(status, gin.H{
		"id":    crt.ID,
		"items": crt.Items,
		"total": crt.Total(),
	})
}

func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, cart.ErrOptionNotFound),
		errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, catalog.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		zap.L().Error("cart operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart operation failed"})
	}
}

// CreateCartHandler starts a new cart session.
func (h *CartHandler) CreateCartHandler(c *gin.Context) {
	crt, err := h.Svc.CreateCart(c)
	if err != nil {
		cartError(c, err)
		return
	}
	cartResponse(c, http.StatusCreated, crt)
}

// GetCartHandler returns the cart with its running total.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	crt, err := h.Svc.GetCart(c, c.Param("cartId"))
	if err != nil {
		cartError(c, err)
		return
	}
	cartResponse(c, http.StatusOK, crt)
}

// AddItemHandler appends a service-option or package line item.
func (h *CartHandler) AddItemHandler(c *gin.Context) {
	var input addItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cartID := c.Param("cartId")
	var crt *models.Cart
	var err error

	switch input.Type {
	case "service":
		if input.ServiceID == "" || input.OptionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId and optionId are required for service items"})
			return
		}
		crt, err = h.Svc.AddServiceItem(c, cartID, input.ServiceID, input.OptionID)
	case "package":
		if input.PackageID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "packageId is required for package items"})
			return
		}
		crt, err = h.Svc.AddPackageItem(c, cartID, input.PackageID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be service or package"})
		return
	}

	if err != nil {
		cartError(c, err)
		return
	}
	cartResponse(c, http.StatusOK, crt)
}

// RemoveItemHandler removes one occurrence of the given line item.
func (h *CartHandler) RemoveItemHandler(c *gin.Context) {
	crt, err := h.Svc.RemoveItem(c, c.Param("cartId"), c.Param("itemId"))
	if err != nil {
		cartError(c, err)
		return
	}
	cartResponse(c, http.StatusOK, crt)
}
