package dto

import (
	"time"

	"github.com/google/uuid"
)

// Price travels as a string so the exact decimal survives JSON round-trips.
type PlanCreateRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Price           string `json:"price" validate:"required"`
	BillingInterval string `json:"billing_interval" validate:"required,oneof=monthly yearly"`
}

type PlanUpdateRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Price           string `json:"price" validate:"required"`
	BillingInterval string `json:"billing_interval" validate:"required,oneof=monthly yearly"`
}

type PlanResponse struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Price           string    `json:"price"`
	BillingInterval string    `json:"billing_interval"`
	CreatedAt       time.Time `json:"created_at"`
}
