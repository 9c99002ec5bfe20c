package rental

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carhive/storefront/internal/models"
)

type CreateBookingRequest struct {
	CarID      int64       `json:"carId"`
	PickupDate models.Date `json:"pickupDate"`
	DropDate   models.Date `json:"dropDate"`
}

// CreateBooking submits a reservation request. The backend re-validates
// everything the storefront checked and may still reject with an
// availability conflict; see IsAvailabilityConflict.
func (c *Client) CreateBooking(ctx context.Context, token string, req CreateBookingRequest) (models.Booking, error) {
	var booking models.Booking
	err := c.do(ctx, http.MethodPost, "/bookings", token, req, &booking)
	return booking, err
}

func (c *Client) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := c.do(ctx, http.MethodGet, "/bookings/my-bookings", token, nil, &bookings)
	return bookings, err
}

func (c *Client) BookingByID(ctx context.Context, token string, bookingID int64) (models.Booking, error) {
	var booking models.Booking
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), token, nil, &booking)
	return booking, err
}

func (c *Client) CancelBooking(ctx context.Context, token string, bookingID int64) (models.Booking, error) {
	var booking models.Booking
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d/cancel", bookingID), token, nil, &booking)
	return booking, err
}

// AllBookings lists every booking in the system. Admin only.
func (c *Client) AllBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := c.do(ctx, http.MethodGet, "/bookings", token, nil, &bookings)
	return bookings, err
}

// UpdateBookingStatus moves a booking to CONFIRMED or REJECTED.
// Admin only; the backend enforces that the booking is PENDING.
func (c *Client) UpdateBookingStatus(ctx context.Context, token string, bookingID int64, status models.BookingStatus) (models.Booking, error) {
	var booking models.Booking
	path := fmt.Sprintf("/bookings/%d/status/%s", bookingID, status)
	err := c.do(ctx, http.MethodPut, path, token, nil, &booking)
	return booking, err
}
