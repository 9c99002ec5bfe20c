package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carhive/storefront/internal/middleware"
	"github.com/carhive/storefront/internal/models"
	"github.com/carhive/storefront/internal/rental"
	"github.com/carhive/storefront/internal/services"
	"github.com/carhive/storefront/pkg/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role" binding:"required,oneof=CUSTOMER ADMIN"`
	DrivingLicence string `json:"drivingLicence"`
}

// Login authenticates against the rental API and opens a session
// holding the API token and the user snapshot.
func Login(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		result, err := api.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		sessionID := uuid.NewString()
		session := services.Session{Token: result.Token, User: result.User}
		if err := services.SaveSession(c.Request.Context(), sessionID, session); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to open session"})
			return
		}

		token, err := utils.GenerateSessionToken(sessionID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to open session"})
			return
		}

		c.SetCookie(middleware.SessionCookie, token, int(services.SessionTTL.Seconds()), "/", "", false, true)
		c.JSON(200, gin.H{
			"success": true,
			"message": "Login successful",
			"data": gin.H{
				"token": token,
				"user":  result.User,
			},
		})
	}
}

// Register passes the sign-up through. Admin registrations come back
// pending; the account works only after an existing admin approves it.
func Register(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}

		user, err := api.Register(c.Request.Context(), rental.RegisterRequest{
			Name:           input.Name,
			Email:          input.Email,
			Password:       input.Password,
			Role:           models.Role(input.Role),
			DrivingLicence: input.DrivingLicence,
		})
		if err != nil {
			respondAPIError(c, err)
			return
		}

		message := "User registered successfully"
		if user.Role == models.RoleAdmin {
			message = "Admin registration received. An existing admin must approve your account before you can log in."
		}

		c.JSON(201, gin.H{"success": true, "message": message, "data": user})
	}
}

// Logout clears the session and the cookie.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(middleware.SessionIDKey)
		if err := services.DeleteSession(c.Request.Context(), sessionID); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to close session"})
			return
		}

		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(200, gin.H{"success": true, "message": "Logged out"})
	}
}
