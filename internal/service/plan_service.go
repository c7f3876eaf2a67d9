package service

import (
	"context"
	"time"

	"subhub-be/internal/dto"
	"subhub-be/internal/entity"
	"subhub-be/internal/pkg/apperrors"
	"subhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IPlanService interface {
	CreatePlan(ctx context.Context, businessId uuid.UUID, req *dto.PlanCreateRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, businessId, planId uuid.UUID, req *dto.PlanUpdateRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, businessId, planId uuid.UUID) error
	GetPlan(ctx context.Context, businessId, planId uuid.UUID) (*dto.PlanResponse, error)
	ListPlans(ctx context.Context, businessId uuid.UUID) ([]*dto.PlanResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory) IPlanService {
	return &planService{
		uowFactory: uowFactory,
	}
}

// parsePrice enforces a non-negative exact decimal with at most two fraction
// digits, the precision the payments ledger stores.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.NewValidation("price", "must be a decimal number")
	}
	if price.IsNegative() {
		return decimal.Zero, apperrors.NewValidation("price", "must not be negative")
	}
	if price.Exponent() < -2 {
		return decimal.Zero, apperrors.NewValidation("price", "at most two decimal places")
	}
	return price, nil
}

func (s *planService) CreatePlan(ctx context.Context, businessId uuid.UUID, req *dto.PlanCreateRequest) (*dto.PlanResponse, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	interval := entity.BillingInterval(req.BillingInterval)
	if !interval.Valid() {
		return nil, apperrors.NewValidation("billing_interval", "must be monthly or yearly")
	}

	plan := &entity.Plan{
		Id:              uuid.New(),
		BusinessId:      businessId,
		Name:            req.Name,
		Price:           price,
		BillingInterval: interval,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, apperrors.NewPersistence("plan create", err)
	}

	return toPlanResponse(plan), nil
}

func (s *planService) UpdatePlan(ctx context.Context, businessId, planId uuid.UUID, req *dto.PlanUpdateRequest) (*dto.PlanResponse, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	interval := entity.BillingInterval(req.BillingInterval)
	if !interval.Valid() {
		return nil, apperrors.NewValidation("billing_interval", "must be monthly or yearly")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindByID(ctx, businessId, planId)
	if err != nil {
		return nil, apperrors.NewPersistence("plan lookup", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFound("plan")
	}

	plan.Name = req.Name
	plan.Price = price
	plan.BillingInterval = interval
	plan.UpdatedAt = time.Now()

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, apperrors.NewPersistence("plan update", err)
	}

	return toPlanResponse(plan), nil
}

func (s *planService) DeletePlan(ctx context.Context, businessId, planId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindByID(ctx, businessId, planId)
	if err != nil {
		return apperrors.NewPersistence("plan lookup", err)
	}
	if plan == nil {
		return apperrors.NewNotFound("plan")
	}

	if err := uow.PlanRepository().Delete(ctx, businessId, planId); err != nil {
		return apperrors.NewPersistence("plan delete", err)
	}
	return nil
}

func (s *planService) GetPlan(ctx context.Context, businessId, planId uuid.UUID) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindByID(ctx, businessId, planId)
	if err != nil {
		return nil, apperrors.NewPersistence("plan lookup", err)
	}
	if plan == nil {
		return nil, apperrors.NewNotFound("plan")
	}

	return toPlanResponse(plan), nil
}

func (s *planService) ListPlans(ctx context.Context, businessId uuid.UUID) ([]*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.PlanRepository().FindAll(ctx, businessId)
	if err != nil {
		return nil, apperrors.NewPersistence("plan list", err)
	}

	responses := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		responses = append(responses, toPlanResponse(p))
	}
	return responses, nil
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		Id:              p.Id,
		Name:            p.Name,
		Price:           p.Price.StringFixed(2),
		BillingInterval: string(p.BillingInterval),
		CreatedAt:       p.CreatedAt,
	}
}
