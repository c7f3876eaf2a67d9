package contract

import (
	"context"

	"subhub-be/internal/entity"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, businessId, id uuid.UUID) error
	FindByID(ctx context.Context, businessId, id uuid.UUID) (*entity.Customer, error)
	FindAll(ctx context.Context, businessId uuid.UUID) ([]*entity.Customer, error)
}
