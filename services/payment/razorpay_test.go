package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyConfirmationValidSignature(t *testing.T) {
	gw := NewRazorpayGateway("key", "secret")

	conf := models.PaymentConfirmation{
		OrderID:   "order_123",
		PaymentID: "pay_456",
		Signature: sign("secret", "order_123", "pay_456"),
	}
	assert.True(t, gw.VerifyConfirmation(conf))
}

func TestVerifyConfirmationTamperedPayload(t *testing.T) {
	gw := NewRazorpayGateway("key", "secret")
	good := sign("secret", "order_123", "pay_456")

	cases := []models.PaymentConfirmation{
		{OrderID: "order_999", PaymentID: "pay_456", Signature: good},
		{OrderID: "order_123", PaymentID: "pay_999", Signature: good},
		{OrderID: "order_123", PaymentID: "pay_456", Signature: "deadbeef"},
		{OrderID: "order_123", PaymentID: "pay_456", Signature: sign("wrong", "order_123", "pay_456")},
	}
	for _, conf := range cases {
		assert.False(t, gw.VerifyConfirmation(conf))
	}
}

func TestVerifyConfirmationMissingFields(t *testing.T) {
	gw := NewRazorpayGateway("key", "secret")

	assert.False(t, gw.VerifyConfirmation(models.PaymentConfirmation{}))
	assert.False(t, gw.VerifyConfirmation(models.PaymentConfirmation{OrderID: "o", PaymentID: "p"}))
}

func TestCreateOrderConvertsToPaise(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/orders", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test",
			"amount":   received["amount"],
			"currency": "INR",
			"receipt":  received["receipt"],
		})
	}))
	defer srv.Close()

	gw := NewRazorpayGateway("key", "secret")
	gw.BaseURL = srv.URL

	order, err := gw.CreateOrder(context.Background(), 145.50, "booking_1")
	require.NoError(t, err)

	assert.Equal(t, float64(14550), received["amount"])
	assert.Equal(t, "order_test", order.ID)
	assert.Equal(t, 145.50, order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "booking_1", order.Receipt)
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewRazorpayGateway("key", "secret")
	gw.BaseURL = srv.URL

	_, err := gw.CreateOrder(context.Background(), 100, "booking_1")
	assert.Error(t, err)
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	gw := NewRazorpayGateway("key", "secret")

	_, err := gw.CreateOrder(context.Background(), 0, "booking_1")
	assert.Error(t, err)
	_, err = gw.CreateOrder(context.Background(), -10, "booking_1")
	assert.Error(t, err)
}
