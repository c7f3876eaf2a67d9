package dto

import "github.com/google/uuid"

// PaymentRecordedMessage is the payload published on the in-process bus after
// each successful charge; the receipt consumer turns it into an email.
type PaymentRecordedMessage struct {
	BusinessId     uuid.UUID `json:"business_id"`
	SubscriptionId uuid.UUID `json:"subscription_id"`
	PaymentId      uuid.UUID `json:"payment_id"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	PlanName       string    `json:"plan_name"`
	Amount         string    `json:"amount"`
	PaymentDate    string    `json:"payment_date"`
}
