package service

import (
	"context"
	"fmt"

	"subhub-be/internal/pkg/logger"
	"subhub-be/pkg/events"
	pkgNats "subhub-be/pkg/nats"
)

// EventSubscriber registers a durable handler for an event subject on the
// billing stream. Satisfied by pkgNats.Subscriber.
type EventSubscriber interface {
	Subscribe(subject string, durableName string, handler pkgNats.EventHandler) error
}

type IBillingEventService interface {
	Consume(ctx context.Context) error
}

// billingEventService records billing events from the shared stream in the
// audit log. Other processes (the billing CLI, other instances) publish to the
// same stream, so the trail also covers runs this instance never executed.
type billingEventService struct {
	subscriber EventSubscriber
	auditLog   logger.ILogger
}

func NewBillingEventService(subscriber EventSubscriber, auditLog logger.ILogger) IBillingEventService {
	return &billingEventService{
		subscriber: subscriber,
		auditLog:   auditLog,
	}
}

func (s *billingEventService) Consume(ctx context.Context) error {
	// No subscriber means the stream is unreachable. The local audit log
	// still records this instance's own runs.
	if s.subscriber == nil {
		return nil
	}

	if err := s.subscriber.Subscribe(events.TypeBillingCycleCompleted, "billing-cycle-auditor", s.handleCycleCompleted); err != nil {
		return err
	}
	return s.subscriber.Subscribe(events.TypeSubscriptionCanceled, "subscription-cancel-auditor", s.handleSubscriptionCanceled)
}

func (s *billingEventService) handleCycleCompleted(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	businessId, _ := payload["business_id"].(string)
	if businessId == "" {
		return fmt.Errorf("cycle event without business_id")
	}

	s.auditLog.Info("billing", "Billing cycle completed", map[string]interface{}{
		"business_id": businessId,
		"processed":   payload["processed"],
		"failed":      payload["failed"],
		"run_date":    payload["run_date"],
	})
	return nil
}

func (s *billingEventService) handleSubscriptionCanceled(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	businessId, _ := payload["business_id"].(string)
	if businessId == "" {
		return fmt.Errorf("cancellation event without business_id")
	}

	s.auditLog.Info("billing", "Subscription canceled", map[string]interface{}{
		"business_id":       businessId,
		"subscription_id":   payload["subscription_id"],
		"cancellation_date": payload["cancellation_date"],
	})
	return nil
}
