package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

// Payment is an append-only ledger entry. Amount snapshots the plan price at
// the moment of billing; rows are never updated after creation.
type Payment struct {
	Id             uuid.UUID
	SubscriptionId uuid.UUID
	Amount         decimal.Decimal
	PaymentDate    time.Time
	Status         PaymentStatus
}
