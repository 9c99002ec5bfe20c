package rental

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carhive/storefront/internal/models"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func TestLoginDecodesTokenAndUser(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "meera@example.com", body["email"])

		writeEnvelope(w, 200, true, "Login successful", map[string]any{
			"token": "upstream-token",
			"user": map[string]any{
				"userId": 12,
				"name":   "Meera",
				"email":  "meera@example.com",
				"role":   "CUSTOMER",
			},
		})
	})

	result, err := api.Login(context.Background(), "meera@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", result.Token)
	assert.Equal(t, int64(12), result.User.UserID)
	assert.Equal(t, models.RoleCustomer, result.User.Role)
}

func TestCreateBookingSendsBearerToken(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer upstream-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(7), body["carId"])
		assert.Equal(t, "2030-01-05", body["pickupDate"])

		writeEnvelope(w, 200, true, "Booking created successfully", map[string]any{
			"bookingId":     101,
			"carId":         7,
			"pickupDate":    "2030-01-05",
			"dropDate":      "2030-01-10",
			"bookingStatus": "PENDING",
			"totalAmount":   12500,
		})
	})

	booking, err := api.CreateBooking(context.Background(), "upstream-token", CreateBookingRequest{
		CarID:      7,
		PickupDate: models.NewDate(2030, 1, 5),
		DropDate:   models.NewDate(2030, 1, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), booking.BookingID)
	assert.Equal(t, models.BookingStatusPending, booking.BookingStatus)
	assert.Equal(t, 12500.0, booking.TotalAmount)
}

func TestRejectionBecomesAPIError(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 400, false, "Car is not available for booking", nil)
	})

	_, err := api.CreateBooking(context.Background(), "token", CreateBookingRequest{CarID: 7})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Equal(t, "Car is not available for booking", apiErr.Message)
	assert.True(t, IsAvailabilityConflict(err))
}

func TestOtherRejectionsAreNotAvailabilityConflicts(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 400, false, "Booking not allowed", nil)
	})

	_, err := api.CreateBooking(context.Background(), "token", CreateBookingRequest{CarID: 7})
	require.Error(t, err)
	assert.False(t, IsAvailabilityConflict(err))
}

func TestMissingPaymentIsErrNotFound(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 404, false, "Payment not found for booking", nil)
	})

	_, err := api.PaymentByBooking(context.Background(), "token", 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnreachableBackendIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // refuse connections from the start
	api := NewClient(server.URL)

	_, err := api.ListCars(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsAvailabilityConflict(err))
}

func TestCreateOrderReadsBareProviderOrder(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/create-order", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(5000), body["amount"])
		assert.Equal(t, "INR", body["currency"])

		// The provider order comes back without the envelope.
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "order_9A33XWu170gUtm",
			"amount":   500000,
			"currency": "INR",
		})
	})

	order, err := api.CreateOrder(context.Background(), "token", 5000, "INR")
	require.NoError(t, err)
	assert.Equal(t, "order_9A33XWu170gUtm", order.ID)
	assert.Equal(t, int64(500000), order.Amount)
}

func TestSearchCarsBuildsQuery(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Mumbai", q.Get("location"))
		assert.Equal(t, "2030-01-05", q.Get("pickupDate"))
		assert.Equal(t, "2030-01-10", q.Get("dropDate"))

		writeEnvelope(w, 200, true, "Available cars found", []map[string]any{
			{"carId": 1, "brand": "Toyota", "city": "Mumbai", "status": "AVAILABLE"},
		})
	})

	cars, err := api.SearchCars(context.Background(), "Mumbai",
		models.NewDate(2030, 1, 5), models.NewDate(2030, 1, 10))
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Toyota", cars[0].Brand)
}
