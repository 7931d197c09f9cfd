package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestFreightValue(t *testing.T) {
	assert.True(t, FreightValue(2500, dec(5000)).Equal(dec(12500)))
	assert.True(t, FreightValue(3600, dec(7200)).Equal(dec(25920)))
	assert.True(t, FreightValue(0, dec(987654)).IsZero())
}

func TestGST(t *testing.T) {
	gst := GST(dec(5000), DefaultGSTRate)
	assert.True(t, gst.Equal(dec(900)), "gst = %s", gst)
	assert.True(t, TotalWithGST(dec(5000), gst).Equal(dec(5900)))
}

func TestPaymentState(t *testing.T) {
	tests := []struct {
		name      string
		invoice   int64
		paid      int64
		status    Status
		remaining int64
		util      float64
	}{
		{"paid in full", 45000, 45000, StatusPaid, 0, 100},
		{"partial", 75000, 45000, StatusPartial, 30000, 60},
		{"nothing paid", 38000, 0, StatusUnpaid, 38000, 0},
		{"zero invoice", 0, 0, StatusPaid, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaymentState(dec(tt.invoice), dec(tt.paid))
			assert.Equal(t, tt.status, got.Status)
			assert.True(t, got.Remaining.Equal(dec(tt.remaining)), "remaining = %s", got.Remaining)
			assert.InDelta(t, tt.util, got.Utilization, 1e-9)
		})
	}
}

func TestDelayHours(t *testing.T) {
	expected, err := ParseTimestamp("2024-12-22T18:00")
	require.NoError(t, err)
	early, err := ParseTimestamp("2024-12-20T15:30")
	require.NoError(t, err)

	got := DelayHours(expected, early)
	assert.Less(t, got, 0)
	assert.Equal(t, -50, got)

	late := expected.Add(3*time.Hour + 20*time.Minute)
	assert.Equal(t, 3, DelayHours(expected, late))
	assert.Equal(t, 0, DelayHours(expected, expected))
}

func TestClassifyExpiryBoundaries(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, ExpiryExpiringSoon, ClassifyExpiry(now.AddDate(0, 0, 30), now, 30))
	assert.Equal(t, ExpiryValid, ClassifyExpiry(now.AddDate(0, 0, 31), now, 30))
	assert.Equal(t, ExpiryExpired, ClassifyExpiry(now.AddDate(0, 0, -1), now, 30))
	assert.Equal(t, ExpiryExpiringSoon, ClassifyExpiry(now, now, 30))
}

func TestCreditUtilization(t *testing.T) {
	assert.InDelta(t, 6.2068965, CreditUtilization(dec(45000), dec(725000)), 1e-6)
	assert.Zero(t, CreditUtilization(dec(45000), decimal.Zero))
}

func TestEstimatedRevenue(t *testing.T) {
	assert.True(t, EstimatedRevenue(145, dec(2500)).Equal(dec(290000)))
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, DaysUntilDue(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -1, DaysUntilDue(time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), now))
}

func TestCollectionRateAndDSO(t *testing.T) {
	assert.InDelta(t, 75.0, CollectionRate(dec(90000), dec(30000)), 1e-9)
	assert.Zero(t, CollectionRate(decimal.Zero, decimal.Zero))

	assert.InDelta(t, 7.5, DaysSalesOutstanding(dec(30000), dec(120000), 30), 1e-9)
	assert.Zero(t, DaysSalesOutstanding(dec(30000), decimal.Zero, 30))
}

func TestOnTimeRate(t *testing.T) {
	assert.InDelta(t, 50.0, OnTimeRate(1, 2), 1e-9)
	assert.Zero(t, OnTimeRate(0, 0))
}
