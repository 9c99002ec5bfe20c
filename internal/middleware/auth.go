package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carhive/storefront/internal/models"
	"github.com/carhive/storefront/internal/services"
	"github.com/carhive/storefront/pkg/utils"
)

// Context keys set for authenticated requests.
const (
	SessionIDKey = "sessionId"
	SessionKey   = "session"
)

// SessionCookie carries the signed session token between requests.
const SessionCookie = "storefront_session"

// AuthMiddleware resolves the session token (header, cookie, or query
// parameter for WebSocket) into the stored session.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// First try to get token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		// Then the session cookie set at login
		if tokenString == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				tokenString = cookie
			}
		}

		// If not found, try query parameter (for WebSocket)
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			c.JSON(401, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		sessionID, err := utils.ParseSessionToken(tokenString)
		if err != nil {
			c.JSON(401, gin.H{"success": false, "message": "Invalid session"})
			c.Abort()
			return
		}

		session, err := services.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(401, gin.H{"success": false, "message": "Session expired, please log in again"})
			c.Abort()
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequireAdmin gates the moderation views on the session role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session.User.Role != models.RoleAdmin {
			c.JSON(403, gin.H{"success": false, "message": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session resolved by AuthMiddleware.
func CurrentSession(c *gin.Context) services.Session {
	session, _ := c.Get(SessionKey)
	s, _ := session.(services.Session)
	return s
}
