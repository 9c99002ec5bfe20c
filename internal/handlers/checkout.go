package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carhive/storefront/internal/booking"
	"github.com/carhive/storefront/internal/checkout"
	"github.com/carhive/storefront/internal/middleware"
	"github.com/carhive/storefront/internal/models"
	"github.com/carhive/storefront/internal/rental"
	"github.com/carhive/storefront/internal/services"
)

type PayInput struct {
	CardNumber string `json:"cardNumber" binding:"required"`
	CardHolder string `json:"cardHolder"`
	Expiry     string `json:"expiry" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
}

// CheckoutSummary renders the order summary for a booking. Checkout
// is only offered for CONFIRMED, unpaid bookings.
func CheckoutSummary(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		b, paid, ok := payableBooking(c, api, session.Token)
		if !ok {
			return
		}

		if !booking.Payable(b.BookingStatus, paid) {
			c.JSON(409, gin.H{"success": false, "message": checkoutBlockedMessage(b.BookingStatus, paid)})
			return
		}

		c.JSON(200, gin.H{"success": true, "data": gin.H{
			"booking":  b,
			"amount":   b.TotalAmount,
			"currency": "INR",
		}})
	}
}

// Pay runs the checkout. Failures before the charge are retryable;
// a captured charge the backend failed to record is surfaced as a
// distinct critical error telling the user to contact support.
func Pay(api *rental.Client, initiator *checkout.Initiator, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		b, paid, ok := payableBooking(c, api, session.Token)
		if !ok {
			return
		}

		if !booking.Payable(b.BookingStatus, paid) {
			c.JSON(409, gin.H{"success": false, "message": checkoutBlockedMessage(b.BookingStatus, paid)})
			return
		}

		var input PayInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		payment, err := initiator.Pay(c.Request.Context(), session.Token, b, checkout.Card{
			Number: input.CardNumber,
			Holder: input.CardHolder,
			Expiry: input.Expiry,
			CVV:    input.CVV,
		})
		if err != nil {
			var recErr *checkout.ReconciliationError
			if errors.As(err, &recErr) {
				c.JSON(502, gin.H{
					"success":  false,
					"critical": true,
					"message": "Your payment was captured but could not be recorded. " +
						"Do not retry; please contact support with reference " + recErr.ProviderPaymentID + ".",
				})
				return
			}
			respondAPIError(c, err)
			return
		}

		hub.NotifyPaymentRecorded(session.User.UserID, services.PaymentRecorded{
			BookingID: b.BookingID,
			Amount:    payment.Amount,
		})

		c.JSON(200, gin.H{
			"success":  true,
			"message":  "Payment successful",
			"data":     payment,
			"redirect": "/my-bookings",
		})
	}
}

func payableBooking(c *gin.Context, api *rental.Client, token string) (models.Booking, bool, bool) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid booking id"})
		return models.Booking{}, false, false
	}

	b, err := api.BookingByID(c.Request.Context(), token, bookingID)
	if err != nil {
		respondAPIError(c, err)
		return models.Booking{}, false, false
	}

	paid := false
	payment, err := api.PaymentByBooking(c.Request.Context(), token, bookingID)
	if err == nil && payment.Settled() {
		paid = true
	}

	return b, paid, true
}

func checkoutBlockedMessage(status models.BookingStatus, paid bool) string {
	switch {
	case paid:
		return "This booking is already paid."
	case status == models.BookingStatusPending:
		return "This booking is awaiting approval and cannot be paid yet."
	default:
		return "This booking cannot be paid in its current state."
	}
}
