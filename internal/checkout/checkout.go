// Package checkout runs the payment handoff for a confirmed booking:
// open an order for the booking total, charge the instrument through
// the provider, then record the charge with the rental API. A failure
// before the charge is retryable; a failure after it is not.
package checkout

import (
	"context"
	"fmt"

	"github.com/carhive/storefront/internal/models"
	"github.com/carhive/storefront/internal/rental"
)

// ReconciliationError means the provider captured the charge but the
// rental API did not record it. The user must not retry (that would
// charge them twice); they need support to reconcile the payment.
type ReconciliationError struct {
	BookingID         int64
	ProviderPaymentID string
	Err               error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("payment %s captured for booking %d but not recorded: %v",
		e.ProviderPaymentID, e.BookingID, e.Err)
}

func (e *ReconciliationError) Unwrap() error { return e.Err }

type Initiator struct {
	api      *rental.Client
	provider Provider
}

func NewInitiator(api *rental.Client, provider Provider) *Initiator {
	return &Initiator{api: api, provider: provider}
}

// Pay runs the full checkout for a booking. On success the returned
// payment is the authoritative record; the caller re-fetches the
// booking list rather than patching local state.
func (i *Initiator) Pay(ctx context.Context, token string, b models.Booking, card Card) (models.Payment, error) {
	order, err := i.api.CreateOrder(ctx, token, b.TotalAmount, "INR")
	if err != nil {
		return models.Payment{}, err
	}

	result, err := i.provider.Charge(ctx, order, card)
	if err != nil {
		return models.Payment{}, err
	}

	// Past this point the money has moved. Any failure is a
	// reconciliation problem, not a retryable one.
	payment, err := i.api.ConfirmPayment(ctx, token, rental.ConfirmPaymentRequest{
		BookingID:         b.BookingID,
		Amount:            b.TotalAmount,
		PaymentMode:       models.PaymentModeOnline,
		PaymentDate:       models.Today(),
		ProviderPaymentID: result.PaymentID,
		ProviderOrderID:   result.OrderID,
		ProviderSignature: result.Signature,
	})
	if err != nil {
		return models.Payment{}, &ReconciliationError{
			BookingID:         b.BookingID,
			ProviderPaymentID: result.PaymentID,
			Err:               err,
		}
	}

	return payment, nil
}
