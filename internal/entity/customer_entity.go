package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id         uuid.UUID
	BusinessId uuid.UUID
	FullName   string
	Email      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
