package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusTrial    SubscriptionStatus = "trial"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusCanceled,
		SubscriptionStatusPastDue, SubscriptionStatusTrial:
		return true
	}
	return false
}

// Subscription links a customer to a plan. NextBillingDate is always >=
// StartDate; CancellationDate is set only when the status moves to canceled.
type Subscription struct {
	Id               uuid.UUID
	CustomerId       uuid.UUID
	PlanId           uuid.UUID
	Status           SubscriptionStatus
	StartDate        time.Time
	NextBillingDate  time.Time
	CancellationDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BillingLine is a read view joining an active subscription to the owning
// plan's current pricing, used by the metrics engine.
type BillingLine struct {
	SubscriptionId  uuid.UUID
	Price           decimal.Decimal
	BillingInterval BillingInterval
}
