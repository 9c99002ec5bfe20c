package rental

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/carhive/storefront/internal/models"
)

func (c *Client) ListCars(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	err := c.do(ctx, http.MethodGet, "/cars", "", nil, &cars)
	return cars, err
}

func (c *Client) CarByID(ctx context.Context, carID int64) (models.Car, error) {
	var car models.Car
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cars/%d", carID), "", nil, &car)
	return car, err
}

// Cities returns the distinct set of cities cars are stationed in.
func (c *Client) Cities(ctx context.Context) ([]string, error) {
	var cities []string
	err := c.do(ctx, http.MethodGet, "/cars/cities", "", nil, &cities)
	return cities, err
}

// SearchCars delegates availability search to the backend. Only the
// backend can answer which cars are free for a date range.
func (c *Client) SearchCars(ctx context.Context, location string, pickup, drop models.Date) ([]models.Car, error) {
	q := url.Values{}
	if location != "" {
		q.Set("location", location)
	}
	if !pickup.IsZero() {
		q.Set("pickupDate", pickup.String())
	}
	if !drop.IsZero() {
		q.Set("dropDate", drop.String())
	}

	path := "/cars/search"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var cars []models.Car
	err := c.do(ctx, http.MethodGet, path, "", nil, &cars)
	return cars, err
}
