package service

import (
	"context"
	"time"

	"subhub-be/internal/dto"
	"subhub-be/internal/pkg/apperrors"
	"subhub-be/internal/repository/contract"
	"subhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

type IMetricsService interface {
	// ComputeMetrics derives MRR, active subscriber count and churn rate from
	// stored state as of the given date. Read only.
	ComputeMetrics(ctx context.Context, businessId uuid.UUID, asOf time.Time) (*dto.MetricsResponse, error)

	// Invalidate drops the cached metrics for one business. Called by every
	// operation that changes subscription state so a cancellation is visible
	// on the very next dashboard read.
	Invalidate(businessId uuid.UUID)
}

type metricsService struct {
	uowFactory        unitofwork.RepositoryFactory
	cache             *gocache.Cache
	strictChurnWindow bool
}

func NewMetricsService(uowFactory unitofwork.RepositoryFactory, cacheTTL time.Duration, strictChurnWindow bool) IMetricsService {
	return &metricsService{
		uowFactory:        uowFactory,
		cache:             gocache.New(cacheTTL, 2*cacheTTL),
		strictChurnWindow: strictChurnWindow,
	}
}

func (s *metricsService) ComputeMetrics(ctx context.Context, businessId uuid.UUID, asOf time.Time) (*dto.MetricsResponse, error) {
	// The cache is keyed by business only; HTTP callers always pass the
	// current time, so a cached entry is at most one TTL stale.
	if cached, found := s.cache.Get(businessId.String()); found {
		return cached.(*dto.MetricsResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subs := uow.SubscriptionRepository()

	lines, err := subs.ListActiveBillingLines(ctx, businessId)
	if err != nil {
		return nil, apperrors.NewPersistence("metrics billing lines", err)
	}

	// MRR accumulates exactly in decimal; yearly plans contribute price/12.
	// A single rounding to two places happens at the very end.
	mrr := decimal.Zero
	for _, line := range lines {
		mrr = mrr.Add(line.BillingInterval.MonthlyEquivalent(line.Price))
	}

	activeCount, err := subs.CountActiveByBusiness(ctx, businessId)
	if err != nil {
		return nil, apperrors.NewPersistence("metrics active count", err)
	}

	totalCount, err := subs.CountByBusiness(ctx, businessId)
	if err != nil {
		return nil, apperrors.NewPersistence("metrics total count", err)
	}

	churn, err := s.churnRate(ctx, businessId, asOf, totalCount, subs)
	if err != nil {
		return nil, err
	}

	resp := &dto.MetricsResponse{
		MRR:               mrr.Round(2).InexactFloat64(),
		ActiveSubscribers: int(activeCount),
		ChurnRate:         churn,
	}

	s.cache.SetDefault(businessId.String(), resp)
	return resp, nil
}

// churnRate is canceled-this-month over all subscriptions ever created, as a
// percentage rounded to two places. The default window has no upper bound, so
// a cancellation dated in the future still counts once the month starts; the
// strict mode clips the window to the current month.
func (s *metricsService) churnRate(ctx context.Context, businessId uuid.UUID, asOf time.Time, totalCount int64, subs contract.SubscriptionRepository) (float64, error) {
	if totalCount == 0 {
		return 0, nil
	}

	monthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)

	var canceled int64
	var err error
	if s.strictChurnWindow {
		nextMonth := monthStart.AddDate(0, 1, 0)
		canceled, err = subs.CountCanceledWithin(ctx, businessId, monthStart, nextMonth)
	} else {
		canceled, err = subs.CountCanceledOnOrAfter(ctx, businessId, monthStart)
	}
	if err != nil {
		return 0, apperrors.NewPersistence("metrics churn count", err)
	}

	rate := decimal.NewFromInt(canceled).
		Div(decimal.NewFromInt(totalCount)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	return rate.InexactFloat64(), nil
}

func (s *metricsService) Invalidate(businessId uuid.UUID) {
	s.cache.Delete(businessId.String())
}
