package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/carhive/storefront/internal/booking"
	"github.com/carhive/storefront/internal/rental"
)

// respondValidationError reports a form problem back to the booking
// view. 422 keeps these apart from backend rejections.
func respondValidationError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	if !errors.As(err, &verr) {
		c.JSON(500, gin.H{"success": false, "message": "Something went wrong. Please try again."})
		return
	}
	c.JSON(422, gin.H{"success": false, "message": verr.Message, "code": verr.Code})
}

// respondAPIError turns a rental client failure into an inline view
// message. Backend rejections are surfaced verbatim; network failures
// get a generic retry message. Nothing propagates past the view.
func respondAPIError(c *gin.Context, err error) {
	var apiErr *rental.APIError
	switch {
	case errors.Is(err, rental.ErrNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Not found"})
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = 502
		}
		c.JSON(status, gin.H{"success": false, "message": apiErr.Message})
	case rental.IsTransport(err):
		c.JSON(502, gin.H{"success": false, "message": "Could not reach the booking service. Please try again."})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Something went wrong. Please try again."})
	}
}
