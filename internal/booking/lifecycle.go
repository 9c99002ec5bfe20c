package booking

import "github.com/carhive/storefront/internal/models"

// Action is something the owning user may do to a booking right now.
type Action string

const (
	ActionPay    Action = "PAY"
	ActionCancel Action = "CANCEL"
)

// IsTerminal reports whether a booking can never change state again.
func IsTerminal(status models.BookingStatus) bool {
	return status == models.BookingStatusRejected || status == models.BookingStatusCancelled
}

// CanModerate reports whether an admin may still confirm or reject
// the booking. Only PENDING bookings are moderatable.
func CanModerate(status models.BookingStatus) bool {
	return status == models.BookingStatusPending
}

// AllowedActions derives the actions visible to the owning user from
// (bookingStatus, paid). It is a pure function:
//
//	PENDING            -> {CANCEL}
//	CONFIRMED, unpaid  -> {PAY, CANCEL}
//	CONFIRMED, paid    -> {}
//	REJECTED/CANCELLED -> {}
//
// Payment never changes bookingStatus; a paid CONFIRMED booking simply
// has nothing left to do.
func AllowedActions(status models.BookingStatus, paid bool) []Action {
	switch status {
	case models.BookingStatusPending:
		return []Action{ActionCancel}
	case models.BookingStatusConfirmed:
		if paid {
			return nil
		}
		return []Action{ActionPay, ActionCancel}
	default:
		return nil
	}
}

// Payable reports whether checkout may be offered for the booking.
func Payable(status models.BookingStatus, paid bool) bool {
	return status == models.BookingStatusConfirmed && !paid
}
