package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Pure derivations shared by documents, services and views. None of these touch
// a clock or global state; callers pass "now" explicitly.

var (
	// DefaultGSTRate is the flat goods-and-services tax applied to freight.
	DefaultGSTRate = decimal.RequireFromString("0.18")

	routeRevenueFactor = decimal.RequireFromString("0.8")
	thousand           = decimal.NewFromInt(1000)
	hundred            = decimal.NewFromInt(100)
)

// DefaultExpiryWindowDays is how far ahead a certificate counts as expiring soon.
const DefaultExpiryWindowDays = 30

// FreightValue prices a consignment: rate is quoted per 1000 kg.
func FreightValue(weightKg float64, ratePerThousandKg decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(weightKg).Mul(ratePerThousandKg).Div(thousand)
}

func GST(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate)
}

func TotalWithGST(base, gst decimal.Decimal) decimal.Decimal {
	return base.Add(gst)
}

// PaymentSummary is the settlement state of an amount owed.
type PaymentSummary struct {
	Status      Status
	Remaining   decimal.Decimal
	Utilization float64
}

// PaymentState derives status, remaining balance and paid percentage from amounts.
// A zero invoice is settled by definition.
func PaymentState(invoiceAmount, paidAmount decimal.Decimal) PaymentSummary {
	if invoiceAmount.Sign() <= 0 {
		return PaymentSummary{Status: StatusPaid, Remaining: decimal.Zero, Utilization: 100}
	}

	remaining := invoiceAmount.Sub(paidAmount)
	utilization := paidAmount.Div(invoiceAmount).Mul(hundred).InexactFloat64()

	switch {
	case remaining.Sign() <= 0:
		return PaymentSummary{Status: StatusPaid, Remaining: remaining, Utilization: utilization}
	case paidAmount.Sign() <= 0:
		return PaymentSummary{Status: StatusUnpaid, Remaining: remaining, Utilization: 0}
	default:
		return PaymentSummary{Status: StatusPartial, Remaining: remaining, Utilization: utilization}
	}
}

// DelayHours is actual minus expected in whole hours, rounding halves up.
// Positive means late.
func DelayHours(expected, actual time.Time) int {
	hours := actual.Sub(expected).Hours()
	return int(math.Floor(hours + 0.5))
}

// ExpiryClass classifies a dated certificate against now.
type ExpiryClass string

const (
	ExpiryExpired      ExpiryClass = "expired"
	ExpiryExpiringSoon ExpiryClass = "expiring_soon"
	ExpiryValid        ExpiryClass = "valid"
)

func ClassifyExpiry(expiry, now time.Time, windowDays int) ExpiryClass {
	left := expiry.Sub(now)
	switch {
	case left < 0:
		return ExpiryExpired
	case left <= time.Duration(windowDays)*24*time.Hour:
		return ExpiryExpiringSoon
	default:
		return ExpiryValid
	}
}

// CreditUtilization is outstanding as a percentage of revenue, 0 without revenue.
func CreditUtilization(outstanding, totalRevenue decimal.Decimal) float64 {
	if totalRevenue.Sign() <= 0 {
		return 0
	}
	return outstanding.Div(totalRevenue).Mul(hundred).InexactFloat64()
}

// EstimatedRevenue applies the 80% realisation factor to completed route shipments.
func EstimatedRevenue(completedShipments int, ratePerTon decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(completedShipments)).Mul(ratePerTon).Mul(routeRevenueFactor)
}

// DaysUntilDue floors the distance to due in days; negative once overdue.
func DaysUntilDue(due, now time.Time) int {
	return int(math.Floor(due.Sub(now).Hours() / 24))
}

func CollectionRate(collected, outstanding decimal.Decimal) float64 {
	billed := collected.Add(outstanding)
	if billed.Sign() <= 0 {
		return 0
	}
	return collected.Div(billed).Mul(hundred).InexactFloat64()
}

// DaysSalesOutstanding scales receivables over credit sales to the period length.
func DaysSalesOutstanding(receivables, creditSales decimal.Decimal, periodDays int) float64 {
	if creditSales.Sign() <= 0 {
		return 0
	}
	return receivables.Div(creditSales).Mul(decimal.NewFromInt(int64(periodDays))).InexactFloat64()
}

// OnTimeRate is the share of deliveries with no positive delay.
func OnTimeRate(onTime, delivered int) float64 {
	if delivered <= 0 {
		return 0
	}
	return float64(onTime) / float64(delivered) * 100
}
