package dto

import (
	"github.com/google/uuid"
)

type SubscriptionCreateRequest struct {
	CustomerId uuid.UUID `json:"customer_id" validate:"required"`
	PlanId     uuid.UUID `json:"plan_id" validate:"required"`
	StartDate  string    `json:"start_date" validate:"required"` // YYYY-MM-DD
}

type SubscriptionResponse struct {
	Id               uuid.UUID `json:"id"`
	CustomerId       uuid.UUID `json:"customer_id"`
	PlanId           uuid.UUID `json:"plan_id"`
	Status           string    `json:"status"`
	StartDate        string    `json:"start_date"`
	NextBillingDate  string    `json:"next_billing_date"`
	CancellationDate *string   `json:"cancellation_date,omitempty"`
}
