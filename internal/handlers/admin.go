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

// ModerationView is a booking row in the admin dashboard. The
// moderate flag drives which rows offer confirm/reject buttons.
type ModerationView struct {
	models.Booking
	CanModerate bool `json:"canModerate"`
}

// AllBookings lists every booking for the moderation table.
func AllBookings(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)

		bookings, err := api.AllBookings(c.Request.Context(), session.Token)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		views := make([]ModerationView, 0, len(bookings))
		for _, b := range bookings {
			views = append(views, ModerationView{
				Booking:     b,
				CanModerate: booking.CanModerate(b.BookingStatus),
			})
		}

		c.JSON(200, gin.H{"success": true, "data": views})
	}
}

// UpdateBookingStatus moves PENDING to CONFIRMED or REJECTED. The
// booking is re-fetched first; anything past PENDING is refused here
// rather than relying on a stale dashboard row. The response carries
// the re-fetched list so the dashboard never patches optimistically.
func UpdateBookingStatus(api *rental.Client, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)

		bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid booking id"})
			return
		}

		status := models.BookingStatus(c.Param("status"))
		if status != models.BookingStatusConfirmed && status != models.BookingStatusRejected {
			c.JSON(400, gin.H{"success": false, "message": "Status must be CONFIRMED or REJECTED"})
			return
		}

		current, err := api.BookingByID(c.Request.Context(), session.Token, bookingID)
		if err != nil {
			respondAPIError(c, err)
			return
		}
		if !booking.CanModerate(current.BookingStatus) {
			c.JSON(409, gin.H{
				"success": false,
				"message": "Only pending bookings can be confirmed or rejected.",
			})
			return
		}

		updated, err := api.UpdateBookingStatus(c.Request.Context(), session.Token, bookingID, status)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		if updated.User != nil {
			hub.NotifyBookingStatus(updated.User.UserID, services.BookingStatusChanged{
				BookingID: updated.BookingID,
				Status:    updated.BookingStatus,
			})
		}

		bookings, err := api.AllBookings(c.Request.Context(), session.Token)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		c.JSON(200, gin.H{"success": true, "message": "Booking status updated", "data": bookings})
	}
}

// PendingAdmins lists admin accounts awaiting approval.
func PendingAdmins(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)

		admins, err := api.PendingAdmins(c.Request.Context(), session.Token)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		c.JSON(200, gin.H{"success": true, "data": admins})
	}
}

// ApproveAdmin grants admin access. The grant is irreversible, so the
// response is the re-fetched pending list, not the approved record.
func ApproveAdmin(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)

		adminID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid user id"})
			return
		}

		if _, err := api.ApproveAdmin(c.Request.Context(), session.Token, adminID); err != nil {
			respondAPIError(c, err)
			return
		}

		pending, err := api.PendingAdmins(c.Request.Context(), session.Token)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		c.JSON(200, gin.H{"success": true, "message": "Admin approved successfully", "data": pending})
	}
}
