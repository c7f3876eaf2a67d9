package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessId uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName   string    `gorm:"type:varchar(255);not null"`
	Email      string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	// Relations
	Business      Business       `gorm:"foreignKey:BusinessId"`
	Subscriptions []Subscription `gorm:"foreignKey:CustomerId"`
}

func (Customer) TableName() string {
	return "customers"
}
