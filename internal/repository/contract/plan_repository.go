package contract

import (
	"context"

	"subhub-be/internal/entity"

	"github.com/google/uuid"
)

// Every method is tenant-scoped: a plan id from another business behaves
// exactly like a missing plan.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	Update(ctx context.Context, plan *entity.Plan) error
	Delete(ctx context.Context, businessId, id uuid.UUID) error
	FindByID(ctx context.Context, businessId, id uuid.UUID) (*entity.Plan, error)
	FindAll(ctx context.Context, businessId uuid.UUID) ([]*entity.Plan, error)
}
