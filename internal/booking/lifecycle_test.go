package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carhive/storefront/internal/models"
)

func TestAllowedActions(t *testing.T) {
	tests := []struct {
		name   string
		status models.BookingStatus
		paid   bool
		want   []Action
	}{
		{"pending awaits approval, cancel only", models.BookingStatusPending, false, []Action{ActionCancel}},
		{"confirmed unpaid offers pay and cancel", models.BookingStatusConfirmed, false, []Action{ActionPay, ActionCancel}},
		{"confirmed paid offers nothing", models.BookingStatusConfirmed, true, nil},
		{"rejected is terminal", models.BookingStatusRejected, false, nil},
		{"cancelled is terminal", models.BookingStatusCancelled, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllowedActions(tt.status, tt.paid))
		})
	}
}

func TestAllowedActionsIgnoresPaidOutsideConfirmed(t *testing.T) {
	// A stray paid flag must not resurrect actions on terminal states.
	assert.Empty(t, AllowedActions(models.BookingStatusRejected, true))
	assert.Empty(t, AllowedActions(models.BookingStatusCancelled, true))
}

func TestCanModerate(t *testing.T) {
	assert.True(t, CanModerate(models.BookingStatusPending))
	assert.False(t, CanModerate(models.BookingStatusConfirmed))
	assert.False(t, CanModerate(models.BookingStatusRejected))
	assert.False(t, CanModerate(models.BookingStatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.BookingStatusPending))
	assert.False(t, IsTerminal(models.BookingStatusConfirmed))
	assert.True(t, IsTerminal(models.BookingStatusRejected))
	assert.True(t, IsTerminal(models.BookingStatusCancelled))
}

func TestPayable(t *testing.T) {
	assert.True(t, Payable(models.BookingStatusConfirmed, false))
	assert.False(t, Payable(models.BookingStatusConfirmed, true))
	assert.False(t, Payable(models.BookingStatusPending, false))
	assert.False(t, Payable(models.BookingStatusCancelled, false))
}
