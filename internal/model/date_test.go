package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var p ProductoInput
	err := json.Unmarshal([]byte(`{"codigo":"P-1","precio":12.5,"vencimiento":"2027-03-31"}`), &p)
	require.NoError(t, err)

	assert.Equal(t, NewDate(2027, time.March, 31), p.Vencimiento)
	assert.True(t, decimal.RequireFromString("12.5").Equal(*p.Precio))

	out, err := json.Marshal(p.Vencimiento)
	require.NoError(t, err)
	assert.Equal(t, `"2027-03-31"`, string(out))
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []string{`"31/03/2027"`, `20270331`, `"2027-02-30"`}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(in), &d))
		})
	}
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2026, time.January, 2)

	var fromTime Date
	require.NoError(t, fromTime.Scan(time.Date(2026, 1, 2, 0, 0, 0, 0, time.FixedZone("x", -5*3600))))
	assert.Equal(t, want, fromTime)

	var fromString Date
	require.NoError(t, fromString.Scan("2026-01-02"))
	assert.Equal(t, want, fromString)

	var fromBytes Date
	require.NoError(t, fromBytes.Scan([]byte("2026-01-02T00:00:00Z")))
	assert.Equal(t, want, fromBytes)

	var fromNil Date
	require.NoError(t, fromNil.Scan(nil))
	assert.True(t, fromNil.IsZero())

	var bad Date
	assert.Error(t, bad.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2026, time.December, 24).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-12-24", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
