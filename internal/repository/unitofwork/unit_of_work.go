package unitofwork

import (
	"context"

	"subhub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BusinessRepository() contract.BusinessRepository
	PlanRepository() contract.PlanRepository
	CustomerRepository() contract.CustomerRepository
	SubscriptionRepository() contract.SubscriptionRepository
	PaymentRepository() contract.PaymentRepository
}
