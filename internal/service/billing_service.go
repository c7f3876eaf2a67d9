package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"subhub-be/internal/dto"
	"subhub-be/internal/entity"
	"subhub-be/internal/pkg/apperrors"
	"subhub-be/internal/pkg/logger"
	"subhub-be/internal/repository/unitofwork"
	"subhub-be/pkg/events"
	pkgNats "subhub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const PaymentRecordedTopic = "payment.recorded"

type IBillingService interface {
	// RunBillingCycle charges every due subscription of one business and
	// advances its next billing date. Each subscription commits on its own,
	// so one failure never rolls back the others.
	RunBillingCycle(ctx context.Context, businessId uuid.UUID, today time.Time) (*dto.BillingRunResponse, error)

	ListPayments(ctx context.Context, businessId uuid.UUID, limit, offset int) ([]*dto.PaymentResponse, error)
}

type billingService struct {
	uowFactory     unitofwork.RepositoryFactory
	metricsService IMetricsService
	pubSub         *gochannel.GoChannel
	eventPublisher *pkgNats.Publisher
	auditLog       logger.ILogger

	// One mutex per business serializes concurrent runs for the same tenant;
	// runs for different tenants proceed in parallel.
	locksMu sync.Mutex
	locks   map[uuid.UUID]*sync.Mutex
}

func NewBillingService(
	uowFactory unitofwork.RepositoryFactory,
	metricsService IMetricsService,
	pubSub *gochannel.GoChannel,
	eventPublisher *pkgNats.Publisher,
	auditLog logger.ILogger,
) IBillingService {
	return &billingService{
		uowFactory:     uowFactory,
		metricsService: metricsService,
		pubSub:         pubSub,
		eventPublisher: eventPublisher,
		auditLog:       auditLog,
		locks:          map[uuid.UUID]*sync.Mutex{},
	}
}

func (s *billingService) businessLock(businessId uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, ok := s.locks[businessId]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[businessId] = lock
	}
	return lock
}

func (s *billingService) RunBillingCycle(ctx context.Context, businessId uuid.UUID, today time.Time) (*dto.BillingRunResponse, error) {
	lock := s.businessLock(businessId)
	lock.Lock()
	defer lock.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	due, err := uow.SubscriptionRepository().ListDue(ctx, businessId, today)
	if err != nil {
		return nil, apperrors.NewPersistence("billing due list", err)
	}

	s.auditLog.Info("billing", "Billing run started", map[string]interface{}{
		"business_id": businessId.String(),
		"run_date":    today.Format("2006-01-02"),
		"due_count":   len(due),
	})

	processed := 0
	failed := 0
	for _, sub := range due {
		if err := s.chargeSubscription(ctx, businessId, sub, today); err != nil {
			failed++
			s.auditLog.Error("billing", "Charge failed", map[string]interface{}{
				"business_id":     businessId.String(),
				"subscription_id": sub.Id.String(),
				"error":           err.Error(),
			})
			continue
		}
		processed++
	}

	s.metricsService.Invalidate(businessId)

	s.auditLog.Info("billing", "Billing run completed", map[string]interface{}{
		"business_id": businessId.String(),
		"processed":   processed,
		"failed":      failed,
	})

	if s.eventPublisher != nil {
		event := events.NewBillingCycleCompleted(businessId.String(), processed, failed, today)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.auditLog.Warn("billing", "Failed to publish cycle event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.BillingRunResponse{Processed: processed, Failed: failed}, nil
}

// chargeSubscription records one payment and advances the billing date inside
// its own transaction. The amount charged is the plan's price at run time, not
// the price when the subscription started.
func (s *billingService) chargeSubscription(ctx context.Context, businessId uuid.UUID, sub *entity.Subscription, today time.Time) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindByID(ctx, businessId, sub.PlanId)
	if err != nil {
		return apperrors.NewPersistence("plan lookup", err)
	}
	if plan == nil {
		return apperrors.NewNotFound("plan")
	}

	customer, err := uow.CustomerRepository().FindByID(ctx, businessId, sub.CustomerId)
	if err != nil {
		return apperrors.NewPersistence("customer lookup", err)
	}
	if customer == nil {
		return apperrors.NewNotFound("customer")
	}

	if err := uow.Begin(ctx); err != nil {
		return apperrors.NewPersistence("billing begin", err)
	}

	payment := &entity.Payment{
		Id:             uuid.New(),
		SubscriptionId: sub.Id,
		Amount:         plan.Price,
		PaymentDate:    today,
		Status:         entity.PaymentStatusPaid,
	}

	if err := uow.PaymentRepository().Create(ctx, payment); err != nil {
		uow.Rollback()
		return apperrors.NewPersistence("payment create", err)
	}

	// The next date advances from its previous value, not from today, so a
	// late run does not push the schedule forward.
	sub.NextBillingDate = plan.BillingInterval.Advance(sub.NextBillingDate)
	sub.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		uow.Rollback()
		return apperrors.NewPersistence("subscription advance", err)
	}

	if err := uow.Commit(); err != nil {
		return apperrors.NewPersistence("billing commit", err)
	}

	s.publishPaymentRecorded(ctx, businessId, customer, plan, payment)
	return nil
}

func (s *billingService) publishPaymentRecorded(ctx context.Context, businessId uuid.UUID, customer *entity.Customer, plan *entity.Plan, payment *entity.Payment) {
	// Cross-process notification first, then the in-process receipt bus.
	if s.eventPublisher != nil {
		event := events.NewPaymentRecorded(
			businessId.String(),
			payment.SubscriptionId.String(),
			payment.Id.String(),
			payment.Amount.StringFixed(2),
			string(payment.Status),
		)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.auditLog.Warn("billing", "Failed to publish payment event", map[string]interface{}{
				"payment_id": payment.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	if s.pubSub == nil {
		return
	}

	payload, err := json.Marshal(dto.PaymentRecordedMessage{
		BusinessId:     businessId,
		SubscriptionId: payment.SubscriptionId,
		PaymentId:      payment.Id,
		CustomerName:   customer.FullName,
		CustomerEmail:  customer.Email,
		PlanName:       plan.Name,
		Amount:         payment.Amount.StringFixed(2),
		PaymentDate:    payment.PaymentDate.Format("2006-01-02"),
	})
	if err != nil {
		s.auditLog.Warn("billing", "Failed to marshal receipt message", map[string]interface{}{
			"payment_id": payment.Id.String(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(PaymentRecordedTopic, msg); err != nil {
		s.auditLog.Warn("billing", "Failed to publish receipt message", map[string]interface{}{
			"payment_id": payment.Id.String(),
			"error":      err.Error(),
		})
	}
}

func (s *billingService) ListPayments(ctx context.Context, businessId uuid.UUID, limit, offset int) ([]*dto.PaymentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	payments, err := uow.PaymentRepository().ListByBusiness(ctx, businessId, limit, offset)
	if err != nil {
		return nil, apperrors.NewPersistence("payment list", err)
	}

	responses := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, &dto.PaymentResponse{
			Id:             p.Id,
			SubscriptionId: p.SubscriptionId,
			Amount:         p.Amount.StringFixed(2),
			PaymentDate:    p.PaymentDate,
			Status:         string(p.Status),
		})
	}
	return responses, nil
}
