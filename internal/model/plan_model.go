package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Plan struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessId      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(100);not null"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BillingInterval string          `gorm:"type:billing_interval;not null"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`

	// Relations
	Business Business `gorm:"foreignKey:BusinessId"`
}

func (Plan) TableName() string {
	return "plans"
}
