package models

type CarStatus string

const (
	CarStatusAvailable CarStatus = "AVAILABLE"
	CarStatusBooked    CarStatus = "BOOKED"
)

type FuelType string

const (
	FuelPetrol   FuelType = "PETROL"
	FuelDiesel   FuelType = "DIESEL"
	FuelElectric FuelType = "ELECTRIC"
)

type CarType string

const (
	CarTypeSedan     CarType = "SEDAN"
	CarTypeSUV       CarType = "SUV"
	CarTypeHatchback CarType = "HATCHBACK"
)

// Car is immutable from the storefront's point of view; only the
// rental API mutates it.
type Car struct {
	CarID              int64     `json:"carId"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	City               string    `json:"city"`
	PickupAddress      string    `json:"pickupAddress,omitempty"`
	Description        string    `json:"description,omitempty"`
	PricePerDay        float64   `json:"pricePerDay"`
	SeatingCapacity    int       `json:"seatingCapacity,omitempty"`
	FuelType           FuelType  `json:"fuelType,omitempty"`
	CarType            CarType   `json:"carType,omitempty"`
	Status             CarStatus `json:"status"`
	Image              []byte    `json:"image,omitempty"`
}

func (c Car) Available() bool {
	return c.Status == CarStatusAvailable
}
