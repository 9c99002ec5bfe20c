package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2030-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2030-01-05", d.String())

	_, err = ParseDate("05/01/2030")
	assert.Error(t, err)
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2030, time.January, 5)
	b := NewDate(2030, time.January, 10)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(NewDate(2030, time.January, 5)))
	assert.Equal(t, 5, a.DaysUntil(b))
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Pickup Date `json:"pickupDate"`
		Drop   Date `json:"dropDate"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"pickupDate":"2030-01-05","dropDate":null}`), &p))
	assert.Equal(t, "2030-01-05", p.Pickup.String())
	assert.True(t, p.Drop.IsZero())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pickupDate":"2030-01-05","dropDate":null}`, string(out))
}
