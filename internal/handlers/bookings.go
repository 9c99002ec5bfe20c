package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carhive/storefront/internal/booking"
	"github.com/carhive/storefront/internal/middleware"
	"github.com/carhive/storefront/internal/models"
	"github.com/carhive/storefront/internal/rental"
	"github.com/carhive/storefront/internal/services"
)

type CreateBookingInput struct {
	CarID      int64  `json:"carId" binding:"required"`
	PickupDate string `json:"pickupDate"`
	DropDate   string `json:"dropDate"`
	Location   string `json:"location"`
}

// BookingView is a booking joined with the actions the owner may take
// right now. Actions are derived, never stored.
type BookingView struct {
	models.Booking
	Paid    bool             `json:"paid"`
	Actions []booking.Action `json:"actions"`
}

// CreateBooking validates and submits a reservation request.
// A user without a licence image on file is turned away before any
// validation runs; the UI sends them to the profile view to fix it.
func CreateBooking(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		if !session.User.HasLicenceImage() {
			c.JSON(403, gin.H{
				"success":  false,
				"message":  "Please upload your driving licence before booking a car.",
				"redirect": "/profile",
			})
			return
		}

		var input CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		// Form checks first; a rejected form never reaches the network.
		validated, err := booking.ValidateForm(booking.Request{
			CarID:      input.CarID,
			PickupDate: input.PickupDate,
			DropDate:   input.DropDate,
			Location:   input.Location,
		}, models.Today())
		if err != nil {
			respondValidationError(c, err)
			return
		}

		car, err := api.CarByID(c.Request.Context(), input.CarID)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		if err := booking.MatchCity(validated.Location, car); err != nil {
			respondValidationError(c, err)
			return
		}

		created, err := api.CreateBooking(c.Request.Context(), session.Token, rental.CreateBookingRequest{
			CarID:      validated.CarID,
			PickupDate: validated.PickupDate,
			DropDate:   validated.DropDate,
		})
		if err != nil {
			if rental.IsAvailabilityConflict(err) {
				c.JSON(409, gin.H{
					"success": false,
					"message": "This car is no longer available for the selected dates.",
				})
				return
			}
			respondAPIError(c, err)
			return
		}

		c.JSON(201, gin.H{
			"success":  true,
			"message":  "Booking created successfully",
			"data":     created,
			"redirect": "/checkout/" + strconv.FormatInt(created.BookingID, 10),
		})
	}
}

// MyBookings lists the user's bookings with their derived actions.
func MyBookings(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)

		bookings, err := api.MyBookings(c.Request.Context(), session.Token)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		views := make([]BookingView, 0, len(bookings))
		for _, b := range bookings {
			views = append(views, toBookingView(c, api, session.Token, b))
		}

		c.JSON(200, gin.H{"success": true, "data": views})
	}
}

// BookingDetail joins a booking with its payment record, if any.
func BookingDetail(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid booking id"})
			return
		}

		b, err := api.BookingByID(c.Request.Context(), session.Token, bookingID)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		view := toBookingView(c, api, session.Token, b)
		response := gin.H{"booking": view}

		payment, err := api.PaymentByBooking(c.Request.Context(), session.Token, bookingID)
		if err == nil && payment.Settled() {
			response["payment"] = payment
		}

		c.JSON(200, gin.H{"success": true, "data": response})
	}
}

// CancelBooking cancels and answers with the re-fetched record; the
// backend decides whether the state still allows it.
func CancelBooking(api *rental.Client, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid booking id"})
			return
		}

		if _, err := api.CancelBooking(c.Request.Context(), session.Token, bookingID); err != nil {
			respondAPIError(c, err)
			return
		}

		updated, err := api.BookingByID(c.Request.Context(), session.Token, bookingID)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		hub.NotifyBookingStatus(session.User.UserID, services.BookingStatusChanged{
			BookingID: updated.BookingID,
			Status:    updated.BookingStatus,
		})

		c.JSON(200, gin.H{"success": true, "message": "Booking cancelled successfully", "data": updated})
	}
}

// toBookingView derives the action set. Payment state is only looked
// up for CONFIRMED bookings; every other status is unpaid by
// definition and the lookup would be wasted.
func toBookingView(c *gin.Context, api *rental.Client, token string, b models.Booking) BookingView {
	paid := false
	if b.BookingStatus == models.BookingStatusConfirmed {
		payment, err := api.PaymentByBooking(c.Request.Context(), token, b.BookingID)
		paid = err == nil && payment.Settled()
	}

	return BookingView{
		Booking: b,
		Paid:    paid,
		Actions: booking.AllowedActions(b.BookingStatus, paid),
	}
}
