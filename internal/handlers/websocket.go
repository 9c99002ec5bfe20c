package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/carhive/storefront/internal/middleware"
	"github.com/carhive/storefront/internal/services"
)

// WebSocketHandler attaches the browser to the event hub for
// booking-status and payment pushes.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		services.HandleWebSocket(hub, c.Writer, c.Request, session.User.UserID, session.User.Role)
	}
}
