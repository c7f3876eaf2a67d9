package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriptionId uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentDate    time.Time       `gorm:"not null;autoCreateTime"`
	Status         string          `gorm:"type:payment_status;not null"`

	// Relations
	Subscription Subscription `gorm:"foreignKey:SubscriptionId"`
}

func (Payment) TableName() string {
	return "payments"
}
