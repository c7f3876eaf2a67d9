package service

import (
	"context"
	"log"
	"time"

	"subhub-be/internal/dto"
	"subhub-be/internal/entity"
	"subhub-be/internal/pkg/apperrors"
	"subhub-be/internal/repository/unitofwork"
	"subhub-be/pkg/events"
	pkgNats "subhub-be/pkg/nats"

	"github.com/google/uuid"
)

type ISubscriptionService interface {
	CreateSubscription(ctx context.Context, businessId uuid.UUID, req *dto.SubscriptionCreateRequest) (*dto.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, businessId, subscriptionId uuid.UUID, cancelDate time.Time) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, businessId, subscriptionId uuid.UUID) (*dto.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, businessId uuid.UUID) ([]*dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	metricsService IMetricsService
	eventPublisher *pkgNats.Publisher
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	metricsService IMetricsService,
	eventPublisher *pkgNats.Publisher,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		metricsService: metricsService,
		eventPublisher: eventPublisher,
	}
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, businessId uuid.UUID, req *dto.SubscriptionCreateRequest) (*dto.SubscriptionResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidation("start_date", "must be YYYY-MM-DD")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Both references must belong to the caller's business. A customer or
	// plan owned by another tenant looks exactly like a missing one.
	customer, err := uow.CustomerRepository().FindByID(ctx, businessId, req.CustomerId)
	if err != nil {
		return nil, apperrors.NewPersistence("customer lookup", err)
	}
	if customer == nil {
		return nil, apperrors.NewNotFound("customer")
	}

	plan, err := uow.PlanRepository().FindByID(ctx, businessId, req.PlanId)
	if err != nil {
		return nil, apperrors.NewPersistence("plan lookup", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFound("plan")
	}

	subscription := &entity.Subscription{
		Id:              uuid.New(),
		CustomerId:      customer.Id,
		PlanId:          plan.Id,
		Status:          entity.SubscriptionStatusActive,
		StartDate:       startDate,
		NextBillingDate: plan.BillingInterval.Advance(startDate),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := uow.SubscriptionRepository().Create(ctx, subscription); err != nil {
		return nil, apperrors.NewPersistence("subscription create", err)
	}

	s.metricsService.Invalidate(businessId)

	return toSubscriptionResponse(subscription), nil
}

// CancelSubscription is idempotent: canceling an already canceled subscription
// refreshes the cancellation date and succeeds.
func (s *subscriptionService) CancelSubscription(ctx context.Context, businessId, subscriptionId uuid.UUID, cancelDate time.Time) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.SubscriptionRepository().FindByID(ctx, businessId, subscriptionId)
	if err != nil {
		return nil, apperrors.NewPersistence("subscription lookup", err)
	}
	if subscription == nil {
		return nil, apperrors.NewNotFound("subscription")
	}

	subscription.Status = entity.SubscriptionStatusCanceled
	subscription.CancellationDate = &cancelDate
	subscription.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().Update(ctx, subscription); err != nil {
		return nil, apperrors.NewPersistence("subscription cancel", err)
	}

	s.metricsService.Invalidate(businessId)

	if s.eventPublisher != nil {
		event := events.NewSubscriptionCanceled(businessId.String(), subscription.Id.String(), cancelDate)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to publish cancellation event: %v", err)
		}
	}

	return toSubscriptionResponse(subscription), nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, businessId, subscriptionId uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscription, err := uow.SubscriptionRepository().FindByID(ctx, businessId, subscriptionId)
	if err != nil {
		return nil, apperrors.NewPersistence("subscription lookup", err)
	}
	if subscription == nil {
		return nil, apperrors.NewNotFound("subscription")
	}

	return toSubscriptionResponse(subscription), nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, businessId uuid.UUID) ([]*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscriptions, err := uow.SubscriptionRepository().FindAll(ctx, businessId)
	if err != nil {
		return nil, apperrors.NewPersistence("subscription list", err)
	}

	responses := make([]*dto.SubscriptionResponse, 0, len(subscriptions))
	for _, sub := range subscriptions {
		responses = append(responses, toSubscriptionResponse(sub))
	}
	return responses, nil
}

func toSubscriptionResponse(sub *entity.Subscription) *dto.SubscriptionResponse {
	resp := &dto.SubscriptionResponse{
		Id:              sub.Id,
		CustomerId:      sub.CustomerId,
		PlanId:          sub.PlanId,
		Status:          string(sub.Status),
		StartDate:       sub.StartDate.Format("2006-01-02"),
		NextBillingDate: sub.NextBillingDate.Format("2006-01-02"),
	}
	if sub.CancellationDate != nil {
		d := sub.CancellationDate.Format("2006-01-02")
		resp.CancellationDate = &d
	}
	return resp
}
