package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is the tenant root. Every plan, customer, subscription and payment
// is scoped to exactly one business.
type Business struct {
	Id           uuid.UUID
	Name         string
	OwnerEmail   string
	PasswordHash string
	CreatedAt    time.Time
}
