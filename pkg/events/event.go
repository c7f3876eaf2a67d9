package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "payment.recorded").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the concrete implementation shared by all event constructors.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypePaymentRecorded       = "payment.recorded"
	TypeSubscriptionCanceled  = "subscription.canceled"
	TypeBillingCycleCompleted = "billing.cycle.completed"
)

// NewPaymentRecorded is emitted after a billing cycle persists one payment.
func NewPaymentRecorded(businessID, subscriptionID, paymentID, amount, status string) Event {
	return BaseEvent{
		Type: TypePaymentRecorded,
		Data: map[string]interface{}{
			"business_id":     businessID,
			"subscription_id": subscriptionID,
			"payment_id":      paymentID,
			"amount":          amount,
			"status":          status,
		},
		OccurredAt: time.Now(),
	}
}

// NewSubscriptionCanceled is emitted when a subscription transitions to canceled.
func NewSubscriptionCanceled(businessID, subscriptionID string, cancellationDate time.Time) Event {
	return BaseEvent{
		Type: TypeSubscriptionCanceled,
		Data: map[string]interface{}{
			"business_id":       businessID,
			"subscription_id":   subscriptionID,
			"cancellation_date": cancellationDate.Format("2006-01-02"),
		},
		OccurredAt: time.Now(),
	}
}

// NewBillingCycleCompleted summarizes one billing run for a business.
func NewBillingCycleCompleted(businessID string, processed, failed int, runDate time.Time) Event {
	return BaseEvent{
		Type: TypeBillingCycleCompleted,
		Data: map[string]interface{}{
			"business_id": businessID,
			"processed":   processed,
			"failed":      failed,
			"run_date":    runDate.Format("2006-01-02"),
		},
		OccurredAt: time.Now(),
	}
}
