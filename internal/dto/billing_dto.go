package dto

import (
	"time"

	"github.com/google/uuid"
)

type BillingRunResponse struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

type PaymentResponse struct {
	Id             uuid.UUID `json:"id"`
	SubscriptionId uuid.UUID `json:"subscription_id"`
	Amount         string    `json:"amount"`
	PaymentDate    time.Time `json:"payment_date"`
	Status         string    `json:"status"`
}
