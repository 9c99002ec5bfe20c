package models

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusCreated PaymentStatus = "CREATED"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type PaymentMode string

const (
	PaymentModeOnline PaymentMode = "ONLINE"
	PaymentModeCash   PaymentMode = "CASH"
)

type Payment struct {
	ID            int64         `json:"id"`
	BookingID     int64         `json:"bookingId"`
	Amount        float64       `json:"amount"`
	PaymentDate   Date          `json:"paymentDate"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMode   PaymentMode   `json:"paymentMode"`
	TransactionID string        `json:"transactionId,omitempty"`
}

// Settled reports whether this record is the authoritative success
// record for its booking. CREATED and FAILED attempts do not count.
func (p Payment) Settled() bool {
	return p.PaymentStatus == PaymentStatusSuccess
}
