package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentRecordedEvent(t *testing.T) {
	event := NewPaymentRecorded("biz-1", "sub-1", "pay-1", "29.99", "paid")

	assert.Equal(t, TypePaymentRecorded, event.EventType())
	assert.Equal(t, "biz-1", event.Payload()["business_id"])
	assert.Equal(t, "pay-1", event.Payload()["payment_id"])
	assert.Equal(t, "29.99", event.Payload()["amount"])
	assert.Equal(t, "paid", event.Payload()["status"])
	assert.False(t, event.Timestamp().IsZero())
}

func TestSubscriptionCanceledEvent(t *testing.T) {
	canceledAt := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	event := NewSubscriptionCanceled("biz-1", "sub-1", canceledAt)

	assert.Equal(t, TypeSubscriptionCanceled, event.EventType())
	assert.Equal(t, "2024-06-10", event.Payload()["cancellation_date"])
}

func TestBillingCycleCompletedEvent(t *testing.T) {
	runDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	event := NewBillingCycleCompleted("biz-1", 4, 1, runDate)

	assert.Equal(t, TypeBillingCycleCompleted, event.EventType())
	assert.Equal(t, 4, event.Payload()["processed"])
	assert.Equal(t, 1, event.Payload()["failed"])
	assert.Equal(t, "2024-06-15", event.Payload()["run_date"])
}
