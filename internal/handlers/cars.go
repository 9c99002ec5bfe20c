package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carhive/storefront/internal/catalog"
	"github.com/carhive/storefront/internal/models"
	"github.com/carhive/storefront/internal/rental"
)

// Home is the landing view: available cars plus the city dropdown.
// A bare location query filters the fetched set in memory; a date
// range delegates to the backend search, which alone knows
// availability for a range.
func Home(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		location := c.Query("location")
		pickupStr := c.Query("pickupDate")
		dropStr := c.Query("dropDate")

		cities, err := api.Cities(c.Request.Context())
		if err != nil {
			respondAPIError(c, err)
			return
		}

		var cars []models.Car
		if pickupStr != "" && dropStr != "" {
			pickup, perr := models.ParseDate(pickupStr)
			drop, derr := models.ParseDate(dropStr)
			if perr != nil || derr != nil {
				c.JSON(400, gin.H{"success": false, "message": "Search dates must be YYYY-MM-DD."})
				return
			}
			cars, err = api.SearchCars(c.Request.Context(), location, pickup, drop)
		} else {
			cars, err = api.ListCars(c.Request.Context())
			if err == nil {
				cars = catalog.FilterByLocation(catalog.Available(cars), location)
			}
		}
		if err != nil {
			respondAPIError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"success": true,
			"data": gin.H{
				"cars":   cars,
				"cities": cities,
			},
		})
	}
}

// ListCars is the dedicated listing view: the whole catalog,
// regardless of status.
func ListCars(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		cars, err := api.ListCars(c.Request.Context())
		if err != nil {
			respondAPIError(c, err)
			return
		}

		c.JSON(200, gin.H{"success": true, "data": cars})
	}
}

// CarDetail renders a single car for the booking form.
func CarDetail(api *rental.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		carID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid car id"})
			return
		}

		car, err := api.CarByID(c.Request.Context(), carID)
		if err != nil {
			respondAPIError(c, err)
			return
		}

		c.JSON(200, gin.H{"success": true, "data": car})
	}
}
