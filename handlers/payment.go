package handlers

import (
	"net/http"

	"salonbook/models"
	"salonbook/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment gateway boundary: order creation and
// confirmation verification.
type PaymentHandler struct {
	Gateway payment.Gateway
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(gw payment.Gateway) *PaymentHandler {
	return &PaymentHandler{Gateway: gw}
}

type createOrderInput struct {
	Amount  float64 `json:"amount" binding:"required"`
	Receipt string  `json:"receipt"`
}

// CreateOrderHandler registers a payment order for the cart total.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
	var input createOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Receipt == "" {
		input.Receipt = "booking_" + uuid.New().String()
	}

	order, err := h.Gateway.CreateOrder(c, input.Amount, input.Receipt)
	if err != nil {
		zap.L().Error("order creation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create payment order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// VerifyPaymentHandler checks a gateway confirmation's signature.
func (h *PaymentHandler) VerifyPaymentHandler(c *gin.Context) {
	var conf models.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if !h.Gateway.VerifyConfirmation(conf) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failure"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
