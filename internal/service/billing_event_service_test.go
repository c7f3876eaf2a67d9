package service

import (
	"context"
	"testing"
	"time"

	"subhub-be/pkg/events"
	pkgNats "subhub-be/pkg/nats"

	"github.com/stretchr/testify/assert"
)

type fakeEventSubscriber struct {
	handlers map[string]pkgNats.EventHandler
	durables map[string]string
}

func newFakeEventSubscriber() *fakeEventSubscriber {
	return &fakeEventSubscriber{
		handlers: map[string]pkgNats.EventHandler{},
		durables: map[string]string{},
	}
}

func (f *fakeEventSubscriber) Subscribe(subject string, durableName string, handler pkgNats.EventHandler) error {
	f.handlers[subject] = handler
	f.durables[subject] = durableName
	return nil
}

type recordingLogger struct {
	nopLogger
	messages []string
	details  []map[string]interface{}
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.messages = append(l.messages, message)
	l.details = append(l.details, details)
}

func TestBillingEventConsumerSubscribesDurably(t *testing.T) {
	sub := newFakeEventSubscriber()
	svc := NewBillingEventService(sub, &recordingLogger{})

	err := svc.Consume(context.Background())
	assert.NoError(t, err)

	// Both subjects get a durable consumer so events survive restarts.
	assert.Contains(t, sub.handlers, events.TypeBillingCycleCompleted)
	assert.Contains(t, sub.handlers, events.TypeSubscriptionCanceled)
	assert.Equal(t, "billing-cycle-auditor", sub.durables[events.TypeBillingCycleCompleted])
	assert.Equal(t, "subscription-cancel-auditor", sub.durables[events.TypeSubscriptionCanceled])
}

func TestBillingEventConsumerRecordsCycleCompleted(t *testing.T) {
	sub := newFakeEventSubscriber()
	audit := &recordingLogger{}
	svc := NewBillingEventService(sub, audit)
	assert.NoError(t, svc.Consume(context.Background()))

	event := events.NewBillingCycleCompleted("biz-1", 4, 1, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	err := sub.handlers[events.TypeBillingCycleCompleted](context.Background(), event)
	assert.NoError(t, err)

	assert.Len(t, audit.details, 1)
	assert.Equal(t, "biz-1", audit.details[0]["business_id"])
	assert.Equal(t, 4, audit.details[0]["processed"])
	assert.Equal(t, 1, audit.details[0]["failed"])
}

func TestBillingEventConsumerRejectsAnonymousEvent(t *testing.T) {
	sub := newFakeEventSubscriber()
	audit := &recordingLogger{}
	svc := NewBillingEventService(sub, audit)
	assert.NoError(t, svc.Consume(context.Background()))

	// An event with no business id cannot be attributed, so the handler
	// errors and the message is redelivered.
	event := events.BaseEvent{
		Type:       events.TypeBillingCycleCompleted,
		Data:       map[string]interface{}{"processed": 1},
		OccurredAt: time.Now(),
	}
	err := sub.handlers[events.TypeBillingCycleCompleted](context.Background(), event)
	assert.Error(t, err)
	assert.Empty(t, audit.details)
}

func TestBillingEventConsumerRecordsCancellation(t *testing.T) {
	sub := newFakeEventSubscriber()
	audit := &recordingLogger{}
	svc := NewBillingEventService(sub, audit)
	assert.NoError(t, svc.Consume(context.Background()))

	event := events.NewSubscriptionCanceled("biz-1", "sub-1", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	err := sub.handlers[events.TypeSubscriptionCanceled](context.Background(), event)
	assert.NoError(t, err)

	assert.Len(t, audit.details, 1)
	assert.Equal(t, "sub-1", audit.details[0]["subscription_id"])
	assert.Equal(t, "2024-06-10", audit.details[0]["cancellation_date"])
}

func TestBillingEventConsumerWithoutStream(t *testing.T) {
	svc := NewBillingEventService(nil, &recordingLogger{})
	assert.NoError(t, svc.Consume(context.Background()))
}
