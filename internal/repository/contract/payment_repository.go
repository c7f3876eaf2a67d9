package contract

import (
	"context"

	"subhub-be/internal/entity"

	"github.com/google/uuid"
)

// Payments are an append-only ledger: Create is the only mutation.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListBySubscription(ctx context.Context, businessId, subscriptionId uuid.UUID) ([]*entity.Payment, error)
	ListByBusiness(ctx context.Context, businessId uuid.UUID, limit, offset int) ([]*entity.Payment, error)
}
