package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subscription struct {
	Id               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlanId           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status           string          `gorm:"type:subscription_status;not null;index"`
	StartDate        datatypes.Date  `gorm:"not null"`
	NextBillingDate  datatypes.Date  `gorm:"not null;index"`
	CancellationDate *datatypes.Date `gorm:"index"`
	CreatedAt        time.Time       `gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`

	// Relations
	Customer Customer  `gorm:"foreignKey:CustomerId"`
	Plan     Plan      `gorm:"foreignKey:PlanId"`
	Payments []Payment `gorm:"foreignKey:SubscriptionId"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
