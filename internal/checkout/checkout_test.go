package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/storefront/internal/models"
	"github.com/carhive/storefront/internal/rental"
)

var booking42 = models.Booking{
	BookingID:     42,
	CarID:         7,
	BookingStatus: models.BookingStatusConfirmed,
	TotalAmount:   5000,
}

var validCard = Card{Number: "4111111111111111", Holder: "Meera", Expiry: "12/30", CVV: "123"}

// fakeRentalAPI stands in for the backend's payment endpoints.
type fakeRentalAPI struct {
	orderRequests   atomic.Int64
	confirmRequests atomic.Int64
	failConfirm     bool
	lastConfirm     map[string]any
}

func (f *fakeRentalAPI) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payments/create-order":
			f.orderRequests.Add(1)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, float64(5000), body["amount"])

			json.NewEncoder(w).Encode(map[string]any{
				"id":       "order_test42",
				"amount":   500000,
				"currency": "INR",
			})

		case "/payments":
			f.confirmRequests.Add(1)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastConfirm))

			if f.failConfirm {
				w.WriteHeader(500)
				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "An unexpected error occurred: database unavailable",
				})
				return
			}

			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "Payment processed successfully",
				"data": map[string]any{
					"id":            9,
					"bookingId":     42,
					"amount":        5000,
					"paymentStatus": "SUCCESS",
					"paymentMode":   "ONLINE",
				},
			})

		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(404)
		}
	}
}

func newInitiator(t *testing.T, fake *fakeRentalAPI) *Initiator {
	t.Helper()
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)
	return NewInitiator(rental.NewClient(server.URL), CardProvider{})
}

func TestPayOrdersChargesAndConfirms(t *testing.T) {
	fake := &fakeRentalAPI{}
	initiator := newInitiator(t, fake)

	payment, err := initiator.Pay(context.Background(), "token", booking42, validCard)
	require.NoError(t, err)

	assert.Equal(t, int64(1), fake.orderRequests.Load())
	assert.Equal(t, int64(1), fake.confirmRequests.Load())
	assert.Equal(t, models.PaymentStatusSuccess, payment.PaymentStatus)
	assert.True(t, payment.Settled())

	// The confirmation carries the booking, the amount, and the
	// provider references from the charge.
	assert.Equal(t, float64(42), fake.lastConfirm["bookingId"])
	assert.Equal(t, float64(5000), fake.lastConfirm["amount"])
	assert.Equal(t, "ONLINE", fake.lastConfirm["paymentMode"])
	assert.Equal(t, "order_test42", fake.lastConfirm["razorpayOrderId"])
	assert.NotEmpty(t, fake.lastConfirm["razorpayPaymentId"])
}

func TestPayRejectsIncompleteCardBeforeConfirming(t *testing.T) {
	fake := &fakeRentalAPI{}
	initiator := newInitiator(t, fake)

	_, err := initiator.Pay(context.Background(), "token", booking42, Card{Number: "4111111111111111"})
	require.Error(t, err)

	var recErr *ReconciliationError
	assert.False(t, errors.As(err, &recErr), "a failed charge must stay retryable")
	assert.Equal(t, int64(0), fake.confirmRequests.Load())
}

func TestPayUnreachableBackendIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	initiator := NewInitiator(rental.NewClient(server.URL), CardProvider{})

	_, err := initiator.Pay(context.Background(), "token", booking42, validCard)
	require.Error(t, err)

	var recErr *ReconciliationError
	assert.False(t, errors.As(err, &recErr))
	assert.True(t, rental.IsTransport(err))
}

func TestPayCapturedButUnrecordedIsCritical(t *testing.T) {
	fake := &fakeRentalAPI{failConfirm: true}
	initiator := newInitiator(t, fake)

	_, err := initiator.Pay(context.Background(), "token", booking42, validCard)
	require.Error(t, err)

	var recErr *ReconciliationError
	require.True(t, errors.As(err, &recErr), "confirm failure after capture must be a ReconciliationError")
	assert.Equal(t, int64(42), recErr.BookingID)
	assert.NotEmpty(t, recErr.ProviderPaymentID)
}
