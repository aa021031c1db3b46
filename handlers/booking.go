package handlers

import (
	"errors"
	"net/http"

	"salonbook/services/booking"
	"salonbook/services/cart"
	"salonbook/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves checkout submission and the admin booking views.
type BookingHandler struct {
	Checkout checkout.CheckoutService
	Bookings booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(co checkout.CheckoutService, bs booking.BookingService) *BookingHandler {
	return &BookingHandler{Checkout: co, Bookings: bs}
}

type createBookingInput struct {
	CartID string `json:"cartId" binding:"required"`
	checkout.SubmitInput
}

// CreateBookingHandler submits a checkout. On success the booking is
// returned with status pending and the cart has been emptied.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input createBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Checkout.Submit(c, input.CartID, input.SubmitInput)
	if err != nil {
		var verr *checkout.ValidationError
		var perr *checkout.PaymentError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
		case errors.As(err, &perr):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": perr.Error()})
		case errors.Is(err, cart.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			zap.L().Error("checkout failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// ListBookingsHandler returns bookings, optionally filtered by ?status=.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.ListBookings(c.Query("status"))
	if err != nil {
		zap.L().Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns a single booking.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bk, err := h.Bookings.GetBooking(c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.L().Error("failed to fetch booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, bk)
}

type updateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatusHandler accepts or rejects a pending booking.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	bk, err := h.Bookings.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			zap.L().Error("failed to update booking status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking status"})
		}
		return
	}
	c.JSON(http.StatusOK, bk)
}
