package service

import (
	"context"
	"time"

	"subhub-be/internal/dto"
	"subhub-be/internal/entity"
	"subhub-be/internal/pkg/apperrors"
	"subhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICustomerService interface {
	CreateCustomer(ctx context.Context, businessId uuid.UUID, req *dto.CustomerCreateRequest) (*dto.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, businessId, customerId uuid.UUID, req *dto.CustomerUpdateRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, businessId, customerId uuid.UUID) error
	GetCustomer(ctx context.Context, businessId, customerId uuid.UUID) (*dto.CustomerResponse, error)
	ListCustomers(ctx context.Context, businessId uuid.UUID) ([]*dto.CustomerResponse, error)
}

type customerService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCustomerService(uowFactory unitofwork.RepositoryFactory) ICustomerService {
	return &customerService{
		uowFactory: uowFactory,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, businessId uuid.UUID, req *dto.CustomerCreateRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		Id:         uuid.New(),
		BusinessId: businessId,
		FullName:   req.FullName,
		Email:      req.Email,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		return nil, apperrors.NewPersistence("customer create", err)
	}

	return toCustomerResponse(customer), nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, businessId, customerId uuid.UUID, req *dto.CustomerUpdateRequest) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByID(ctx, businessId, customerId)
	if err != nil {
		return nil, apperrors.NewPersistence("customer lookup", err)
	}
	if customer == nil {
		return nil, apperrors.NewNotFound("customer")
	}

	customer.FullName = req.FullName
	customer.Email = req.Email
	customer.UpdatedAt = time.Now()

	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return nil, apperrors.NewPersistence("customer update", err)
	}

	return toCustomerResponse(customer), nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, businessId, customerId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByID(ctx, businessId, customerId)
	if err != nil {
		return apperrors.NewPersistence("customer lookup", err)
	}
	if customer == nil {
		return apperrors.NewNotFound("customer")
	}

	if err := uow.CustomerRepository().Delete(ctx, businessId, customerId); err != nil {
		return apperrors.NewPersistence("customer delete", err)
	}
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, businessId, customerId uuid.UUID) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindByID(ctx, businessId, customerId)
	if err != nil {
		return nil, apperrors.NewPersistence("customer lookup", err)
	}
	if customer == nil {
		return nil, apperrors.NewNotFound("customer")
	}

	return toCustomerResponse(customer), nil
}

func (s *customerService) ListCustomers(ctx context.Context, businessId uuid.UUID) ([]*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customers, err := uow.CustomerRepository().FindAll(ctx, businessId)
	if err != nil {
		return nil, apperrors.NewPersistence("customer list", err)
	}

	responses := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, toCustomerResponse(c))
	}
	return responses, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Id:        c.Id,
		FullName:  c.FullName,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
