package rental

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/carhive/storefront/internal/models"
)

// PaymentOrder is the provider order opened for a checkout attempt.
// Amount is in the provider's minor unit (paise for INR).
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder opens a provider order for the given amount. Unlike the
// rest of the API this endpoint passes the provider's order object
// through without the envelope.
func (c *Client) CreateOrder(ctx context.Context, token string, amount float64, currency string) (PaymentOrder, error) {
	body := map[string]any{"amount": amount, "currency": currency}
	data, err := json.Marshal(body)
	if err != nil {
		return PaymentOrder{}, &TransportError{Op: "encode /payments/create-order", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments/create-order", strings.NewReader(string(data)))
	if err != nil {
		return PaymentOrder{}, &TransportError{Op: "build /payments/create-order", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return PaymentOrder{}, &TransportError{Op: "POST /payments/create-order", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PaymentOrder{}, &APIError{StatusCode: resp.StatusCode, Message: "could not create payment order"}
	}

	var order PaymentOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return PaymentOrder{}, &TransportError{Op: "decode /payments/create-order", Err: err}
	}
	return order, nil
}

// ConfirmPaymentRequest records a captured charge against a booking.
type ConfirmPaymentRequest struct {
	BookingID         int64              `json:"bookingId"`
	Amount            float64            `json:"amount"`
	PaymentMode       models.PaymentMode `json:"paymentMode"`
	PaymentDate       models.Date        `json:"paymentDate"`
	ProviderPaymentID string             `json:"razorpayPaymentId,omitempty"`
	ProviderOrderID   string             `json:"razorpayOrderId,omitempty"`
	ProviderSignature string             `json:"razorpaySignature,omitempty"`
}

func (c *Client) ConfirmPayment(ctx context.Context, token string, req ConfirmPaymentRequest) (models.Payment, error) {
	var payment models.Payment
	err := c.do(ctx, http.MethodPost, "/payments", token, req, &payment)
	return payment, err
}

// PaymentByBooking returns the payment recorded for a booking, or
// ErrNotFound when nothing has been recorded yet (the unpaid case).
func (c *Client) PaymentByBooking(ctx context.Context, token string, bookingID int64) (models.Payment, error) {
	var payment models.Payment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payments/booking/%d", bookingID), token, nil, &payment)
	return payment, err
}
