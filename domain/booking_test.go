package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLineItemCost_ThirtyDaysEqualsMonthlyPrice(t *testing.T) {
	cost := LineItemCost(250000, date("2025-01-01T00:00:00Z"), date("2025-01-31T00:00:00Z"))
	assert.InDelta(t, 250000.0, cost, 1e-9)
}

func TestLineItemCost_FifteenDaysIsHalfMonthlyPrice(t *testing.T) {
	cost := LineItemCost(3000, date("2025-03-01T00:00:00Z"), date("2025-03-16T00:00:00Z"))
	assert.InDelta(t, 1500.0, cost, 1e-9)
}

func TestLineItemCost_FractionalDaysPropagate(t *testing.T) {
	// 12 hours past the whole day count in half a day of rent
	cost := LineItemCost(3000, date("2025-03-01T00:00:00Z"), date("2025-03-02T12:00:00Z"))
	assert.InDelta(t, 3000.0*1.5/30, cost, 1e-9)
}

func TestLineItemCost_ZeroDuration(t *testing.T) {
	start := date("2025-06-01T00:00:00Z")
	cost := LineItemCost(45500, start, start)
	assert.Equal(t, 0.0, cost)
}

func TestLineItemCost_NegativeDurationIsNotRejected(t *testing.T) {
	cost := LineItemCost(3000, date("2025-06-10T00:00:00Z"), date("2025-06-07T00:00:00Z"))
	assert.InDelta(t, -300.0, cost, 1e-9)
}

func TestRecomputeTotalCost(t *testing.T) {
	booking := &Booking{
		Properties: []BookingLineItem{
			{Cost: 1500},
			{Cost: 2500.5},
			{Cost: 0},
		},
	}

	booking.RecomputeTotalCost()
	assert.InDelta(t, 4000.5, booking.TotalCost, 1e-9)

	booking.Properties = booking.Properties[:1]
	booking.RecomputeTotalCost()
	assert.InDelta(t, 1500.0, booking.TotalCost, 1e-9)
}

func TestRecomputeTotalCost_NoLineItems(t *testing.T) {
	booking := &Booking{TotalCost: 99}
	booking.RecomputeTotalCost()
	assert.Equal(t, 0.0, booking.TotalCost)
}

func TestBookingStatusIsValid(t *testing.T) {
	assert.True(t, BookingStatusPending.IsValid())
	assert.True(t, BookingStatusConfirmed.IsValid())
	assert.True(t, BookingStatusCancelled.IsValid())
	assert.False(t, BookingStatus("Expired").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}
