package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"salonbook/models"
)

const defaultBaseURL = "https://api.razorpay.com"

// RazorpayGateway implements Gateway against the Razorpay orders API.
// Amounts are converted to paise on the wire.
type RazorpayGateway struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Client    *http.Client
}

// NewRazorpayGateway creates a gateway with the given API credentials.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   defaultBaseURL,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder registers a payment order with Razorpay.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount float64, receipt string) (*models.PaymentOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive, got %v", amount)
	}

	payload, err := json.Marshal(orderRequest{
		Amount:   int64(math.Round(amount * 100)),
		Currency: "INR",
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.KeyID, g.KeySecret)

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway rejected order creation: status %d", resp.StatusCode)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &models.PaymentOrder{
		ID:       order.ID,
		Amount:   float64(order.Amount) / 100,
		Currency: order.Currency,
		Receipt:  order.Receipt,
	}, nil
}

// VerifyConfirmation checks the HMAC-SHA256 signature Razorpay computes over
// "<order_id>|<payment_id>" with the key secret.
func (g *RazorpayGateway) VerifyConfirmation(conf models.PaymentConfirmation) bool {
	if conf.OrderID == "" || conf.PaymentID == "" || conf.Signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.KeySecret))
	mac.Write([]byte(conf.OrderID + "|" + conf.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(conf.Signature))
}
