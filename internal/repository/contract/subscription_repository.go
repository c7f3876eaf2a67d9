package contract

import (
	"context"
	"time"

	"subhub-be/internal/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository scopes all reads through the owning customer's
// business id. Aggregate counters back the metrics engine; ListDue backs the
// billing cycle processor.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	FindByID(ctx context.Context, businessId, id uuid.UUID) (*entity.Subscription, error)
	FindAll(ctx context.Context, businessId uuid.UUID) ([]*entity.Subscription, error)

	// ListDue returns active subscriptions with next_billing_date <= today.
	ListDue(ctx context.Context, businessId uuid.UUID, today time.Time) ([]*entity.Subscription, error)

	// ListActiveBillingLines joins each active subscription to its plan's
	// current price and interval.
	ListActiveBillingLines(ctx context.Context, businessId uuid.UUID) ([]*entity.BillingLine, error)

	CountByBusiness(ctx context.Context, businessId uuid.UUID) (int64, error)
	CountActiveByBusiness(ctx context.Context, businessId uuid.UUID) (int64, error)
	CountCanceledOnOrAfter(ctx context.Context, businessId uuid.UUID, since time.Time) (int64, error)
	CountCanceledWithin(ctx context.Context, businessId uuid.UUID, from, until time.Time) (int64, error)
}
