package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/carhive/storefront/internal/middleware"
	"github.com/carhive/storefront/internal/rental"
	"github.com/carhive/storefront/internal/services"
)

// Profile renders the session user.
func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		c.JSON(200, gin.H{"success": true, "data": session.User})
	}
}

// UploadLicence forwards the licence image to the rental API and
// refreshes the session snapshot so the booking gate clears without a
// new login.
func UploadLicence(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		sessionID := c.GetString(middleware.SessionIDKey)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Please select a file first."})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Could not read the uploaded file."})
			return
		}
		defer file.Close()

		user, err := api.UploadLicenceImage(c.Request.Context(), session.Token, session.User.UserID, fileHeader.Filename, file)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		if err := services.RefreshSessionUser(c.Request.Context(), sessionID, user); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Licence uploaded but the session could not be refreshed. Please log in again."})
			return
		}

		c.JSON(200, gin.H{"success": true, "message": "License image uploaded successfully", "data": user})
	}
}
