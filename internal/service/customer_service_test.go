package service

import (
	"context"
	"testing"

	"subhub-be/internal/dto"
	"subhub-be/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

func newCustomerFixture(t *testing.T) (*fakeStore, ICustomerService) {
	t.Helper()
	store := newFakeStore()
	return store, NewCustomerService(newFakeFactory(store))
}

func TestCustomerLifecycle(t *testing.T) {
	store, svc := newCustomerFixture(t)
	businessId := seedBusiness(store)

	created, err := svc.CreateCustomer(context.Background(), businessId, &dto.CustomerCreateRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.test",
	})
	assert.NoError(t, err)

	updated, err := svc.UpdateCustomer(context.Background(), businessId, created.Id, &dto.CustomerUpdateRequest{
		FullName: "Ada King",
		Email:    "ada@example.test",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ada King", updated.FullName)

	err = svc.DeleteCustomer(context.Background(), businessId, created.Id)
	assert.NoError(t, err)

	_, err = svc.GetCustomer(context.Background(), businessId, created.Id)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCustomerTenantIsolation(t *testing.T) {
	store, svc := newCustomerFixture(t)
	businessA := seedBusiness(store)
	businessB := seedBusiness(store)

	customer := seedCustomer(store, businessA)

	_, err := svc.GetCustomer(context.Background(), businessB, customer.Id)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.DeleteCustomer(context.Background(), businessB, customer.Id)
	assert.True(t, apperrors.IsNotFound(err))

	// Still present for its owner.
	found, err := svc.GetCustomer(context.Background(), businessA, customer.Id)
	assert.NoError(t, err)
	assert.Equal(t, customer.Id, found.Id)
}
