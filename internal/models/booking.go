package models

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	BookingID     int64         `json:"bookingId"`
	CarID         int64         `json:"carId"`
	User          *User         `json:"user,omitempty"`
	Car           *Car          `json:"car,omitempty"`
	PickupDate    Date          `json:"pickupDate"`
	DropDate      Date          `json:"dropDate"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	TotalAmount   float64       `json:"totalAmount"`
}
