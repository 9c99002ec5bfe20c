package booking

import (
	"strings"

	"github.com/carhive/storefront/internal/models"
)

// ValidationError is a client-detected problem with a reservation
// request. It blocks submission before the request reaches the rental
// API.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	CodeMissingDates       = "missing dates"
	CodeInvalidDate        = "invalid date"
	CodePastPickup         = "past pickup"
	CodeReturnBeforePickup = "return before pickup"
	CodeMissingLocation    = "missing location"
	CodeLocationMismatch   = "location mismatch"
)

// Request is the booking form as submitted: dates are raw strings
// because the browser sends them that way and absence matters.
type Request struct {
	CarID      int64
	PickupDate string
	DropDate   string
	Location   string
}

// Validated is a request that passed every check, ready for the
// rental API.
type Validated struct {
	CarID      int64
	PickupDate models.Date
	DropDate   models.Date
	Location   string
}

// ValidateForm runs every check that needs no car data, in order: the
// first failing check wins. Callers run it before fetching anything
// so a bad form never costs a network round trip.
func ValidateForm(req Request, today models.Date) (Validated, error) {
	if req.PickupDate == "" || req.DropDate == "" {
		return Validated{}, &ValidationError{Code: CodeMissingDates, Message: "Please fill in all dates."}
	}

	pickup, err := models.ParseDate(req.PickupDate)
	if err != nil {
		return Validated{}, &ValidationError{Code: CodeInvalidDate, Message: "Pickup date is not a valid date."}
	}
	drop, err := models.ParseDate(req.DropDate)
	if err != nil {
		return Validated{}, &ValidationError{Code: CodeInvalidDate, Message: "Return date is not a valid date."}
	}

	if pickup.Before(today) {
		return Validated{}, &ValidationError{Code: CodePastPickup, Message: "Pickup date cannot be in the past."}
	}

	if drop.Before(pickup) {
		return Validated{}, &ValidationError{Code: CodeReturnBeforePickup, Message: "Return date must be on or after the pickup date."}
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		return Validated{}, &ValidationError{Code: CodeMissingLocation, Message: "Please specify a pickup location."}
	}

	return Validated{CarID: req.CarID, PickupDate: pickup, DropDate: drop, Location: location}, nil
}

// MatchCity enforces that the pickup location is the car's city,
// case-insensitively. The backend re-validates regardless.
func MatchCity(location string, car models.Car) error {
	if !strings.EqualFold(strings.TrimSpace(location), car.City) {
		return &ValidationError{
			Code:    CodeLocationMismatch,
			Message: "Pickup location must match the car's city (" + car.City + ").",
		}
	}
	return nil
}

// Validate runs the full check sequence against the car being booked.
func Validate(req Request, car models.Car, today models.Date) (Validated, error) {
	validated, err := ValidateForm(req, today)
	if err != nil {
		return Validated{}, err
	}
	if err := MatchCity(validated.Location, car); err != nil {
		return Validated{}, err
	}
	return validated, nil
}
