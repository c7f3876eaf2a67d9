package contract

import (
	"context"

	"subhub-be/internal/entity"

	"github.com/google/uuid"
)

// Finders return (nil, nil) when no row matches; callers decide whether that
// is a NotFound condition.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	FindByEmail(ctx context.Context, email string) (*entity.Business, error)
}
