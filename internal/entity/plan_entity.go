package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingInterval string

const (
	BillingIntervalMonthly BillingInterval = "monthly"
	BillingIntervalYearly  BillingInterval = "yearly"
)

// Valid reports whether the interval is one of the known enum values.
func (i BillingInterval) Valid() bool {
	return i == BillingIntervalMonthly || i == BillingIntervalYearly
}

// Advance moves a billing date forward by one interval. Intervals are fixed
// day offsets (monthly = 30 days, yearly = 365 days), not calendar arithmetic.
// This drifts over many cycles against real calendar months; it is a deliberate
// simplification carried over from the billing model, not a bug.
func (i BillingInterval) Advance(from time.Time) time.Time {
	if i == BillingIntervalYearly {
		return from.AddDate(0, 0, 365)
	}
	return from.AddDate(0, 0, 30)
}

// MonthlyEquivalent normalizes a price to its monthly revenue contribution:
// monthly plans contribute the full price, yearly plans price/12. Kept in
// decimal end to end so accumulating many subscriptions never picks up binary
// float error.
func (i BillingInterval) MonthlyEquivalent(price decimal.Decimal) decimal.Decimal {
	if i == BillingIntervalYearly {
		return price.Div(decimal.NewFromInt(12))
	}
	return price
}

type Plan struct {
	Id              uuid.UUID
	BusinessId      uuid.UUID
	Name            string
	Price           decimal.Decimal
	BillingInterval BillingInterval
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
