// Package catalog filters the car set for the landing view. The full
// fetched set is filtered in memory; searches with a date range go to
// the rental API instead, since only it knows availability.
package catalog

import (
	"strings"

	"github.com/carhive/storefront/internal/models"
)

// Available narrows the set to cars open for booking. The landing
// view shows only these; the listing view shows everything.
func Available(cars []models.Car) []models.Car {
	out := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if car.Available() {
			out = append(out, car)
		}
	}
	return out
}

// FilterByLocation keeps cars whose city or pickup address contains
// the query, case-insensitively. An empty query keeps everything.
func FilterByLocation(cars []models.Car, location string) []models.Car {
	query := strings.ToLower(strings.TrimSpace(location))
	if query == "" {
		return cars
	}

	out := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if strings.Contains(strings.ToLower(car.City), query) ||
			strings.Contains(strings.ToLower(car.PickupAddress), query) {
			out = append(out, car)
		}
	}
	return out
}
