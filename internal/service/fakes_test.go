package service

import (
	"context"
	"errors"
	"time"

	"subhub-be/internal/entity"
	"subhub-be/internal/repository/contract"
	"subhub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// In-memory repository fakes backing the service tests. Ownership scoping
// mirrors the real implementations: a row belonging to another business is
// reported as missing.

type fakeStore struct {
	businesses    map[uuid.UUID]*entity.Business
	plans         map[uuid.UUID]*entity.Plan
	customers     map[uuid.UUID]*entity.Customer
	subscriptions map[uuid.UUID]*entity.Subscription
	payments      []*entity.Payment

	// subscription ids whose payment insert should fail
	failPaymentFor map[uuid.UUID]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		businesses:     map[uuid.UUID]*entity.Business{},
		plans:          map[uuid.UUID]*entity.Plan{},
		customers:      map[uuid.UUID]*entity.Customer{},
		subscriptions:  map[uuid.UUID]*entity.Subscription{},
		failPaymentFor: map[uuid.UUID]bool{},
	}
}

func (s *fakeStore) businessOf(sub *entity.Subscription) uuid.UUID {
	if c, ok := s.customers[sub.CustomerId]; ok {
		return c.BusinessId
	}
	return uuid.Nil
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeFactory{store: store}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
	inTx  bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.inTx = true
	return nil
}

func (u *fakeUow) Commit() error {
	u.inTx = false
	return nil
}

func (u *fakeUow) Rollback() error {
	u.inTx = false
	return nil
}

func (u *fakeUow) BusinessRepository() contract.BusinessRepository {
	return &fakeBusinessRepo{store: u.store}
}

func (u *fakeUow) PlanRepository() contract.PlanRepository {
	return &fakePlanRepo{store: u.store}
}

func (u *fakeUow) CustomerRepository() contract.CustomerRepository {
	return &fakeCustomerRepo{store: u.store}
}

func (u *fakeUow) SubscriptionRepository() contract.SubscriptionRepository {
	return &fakeSubscriptionRepo{store: u.store}
}

func (u *fakeUow) PaymentRepository() contract.PaymentRepository {
	return &fakePaymentRepo{store: u.store}
}

type fakeBusinessRepo struct {
	store *fakeStore
}

func (r *fakeBusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	r.store.businesses[business.Id] = business
	return nil
}

func (r *fakeBusinessRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return r.store.businesses[id], nil
}

func (r *fakeBusinessRepo) FindByEmail(ctx context.Context, email string) (*entity.Business, error) {
	for _, b := range r.store.businesses {
		if b.OwnerEmail == email {
			return b, nil
		}
	}
	return nil, nil
}

type fakePlanRepo struct {
	store *fakeStore
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.Plan) error {
	r.store.plans[plan.Id] = plan
	return nil
}

func (r *fakePlanRepo) Update(ctx context.Context, plan *entity.Plan) error {
	r.store.plans[plan.Id] = plan
	return nil
}

func (r *fakePlanRepo) Delete(ctx context.Context, businessId, id uuid.UUID) error {
	if p, ok := r.store.plans[id]; ok && p.BusinessId == businessId {
		delete(r.store.plans, id)
	}
	return nil
}

func (r *fakePlanRepo) FindByID(ctx context.Context, businessId, id uuid.UUID) (*entity.Plan, error) {
	p, ok := r.store.plans[id]
	if !ok || p.BusinessId != businessId {
		return nil, nil
	}
	return p, nil
}

func (r *fakePlanRepo) FindAll(ctx context.Context, businessId uuid.UUID) ([]*entity.Plan, error) {
	var out []*entity.Plan
	for _, p := range r.store.plans {
		if p.BusinessId == businessId {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	store *fakeStore
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.store.customers[customer.Id] = customer
	return nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.store.customers[customer.Id] = customer
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, businessId, id uuid.UUID) error {
	if c, ok := r.store.customers[id]; ok && c.BusinessId == businessId {
		delete(r.store.customers, id)
	}
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, businessId, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.store.customers[id]
	if !ok || c.BusinessId != businessId {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCustomerRepo) FindAll(ctx context.Context, businessId uuid.UUID) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.store.customers {
		if c.BusinessId == businessId {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeSubscriptionRepo struct {
	store *fakeStore
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *entity.Subscription) error {
	r.store.subscriptions[sub.Id] = sub
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *entity.Subscription) error {
	r.store.subscriptions[sub.Id] = sub
	return nil
}

func (r *fakeSubscriptionRepo) FindByID(ctx context.Context, businessId, id uuid.UUID) (*entity.Subscription, error) {
	sub, ok := r.store.subscriptions[id]
	if !ok || r.store.businessOf(sub) != businessId {
		return nil, nil
	}
	return sub, nil
}

func (r *fakeSubscriptionRepo) FindAll(ctx context.Context, businessId uuid.UUID) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, sub := range r.store.subscriptions {
		if r.store.businessOf(sub) == businessId {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) ListDue(ctx context.Context, businessId uuid.UUID, today time.Time) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, sub := range r.store.subscriptions {
		if r.store.businessOf(sub) != businessId {
			continue
		}
		if sub.Status != entity.SubscriptionStatusActive {
			continue
		}
		if sub.NextBillingDate.After(today) {
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) ListActiveBillingLines(ctx context.Context, businessId uuid.UUID) ([]*entity.BillingLine, error) {
	var out []*entity.BillingLine
	for _, sub := range r.store.subscriptions {
		if r.store.businessOf(sub) != businessId || sub.Status != entity.SubscriptionStatusActive {
			continue
		}
		plan := r.store.plans[sub.PlanId]
		out = append(out, &entity.BillingLine{
			SubscriptionId:  sub.Id,
			Price:           plan.Price,
			BillingInterval: plan.BillingInterval,
		})
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) CountByBusiness(ctx context.Context, businessId uuid.UUID) (int64, error) {
	var n int64
	for _, sub := range r.store.subscriptions {
		if r.store.businessOf(sub) == businessId {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubscriptionRepo) CountActiveByBusiness(ctx context.Context, businessId uuid.UUID) (int64, error) {
	var n int64
	for _, sub := range r.store.subscriptions {
		if r.store.businessOf(sub) == businessId && sub.Status == entity.SubscriptionStatusActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubscriptionRepo) CountCanceledOnOrAfter(ctx context.Context, businessId uuid.UUID, since time.Time) (int64, error) {
	var n int64
	for _, sub := range r.store.subscriptions {
		if r.store.businessOf(sub) != businessId || sub.Status != entity.SubscriptionStatusCanceled {
			continue
		}
		if sub.CancellationDate != nil && !sub.CancellationDate.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeSubscriptionRepo) CountCanceledWithin(ctx context.Context, businessId uuid.UUID, from, until time.Time) (int64, error) {
	var n int64
	for _, sub := range r.store.subscriptions {
		if r.store.businessOf(sub) != businessId || sub.Status != entity.SubscriptionStatusCanceled {
			continue
		}
		if sub.CancellationDate != nil && !sub.CancellationDate.Before(from) && sub.CancellationDate.Before(until) {
			n++
		}
	}
	return n, nil
}

type fakePaymentRepo struct {
	store *fakeStore
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if r.store.failPaymentFor[payment.SubscriptionId] {
		return errors.New("simulated insert failure")
	}
	r.store.payments = append(r.store.payments, payment)
	return nil
}

func (r *fakePaymentRepo) ListBySubscription(ctx context.Context, businessId, subscriptionId uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.store.payments {
		if p.SubscriptionId == subscriptionId {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) ListByBusiness(ctx context.Context, businessId uuid.UUID, limit, offset int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.store.payments {
		sub, ok := r.store.subscriptions[p.SubscriptionId]
		if !ok || r.store.businessOf(sub) != businessId {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Seeding helpers shared by the test files.

func seedBusiness(store *fakeStore) uuid.UUID {
	id := uuid.New()
	store.businesses[id] = &entity.Business{
		Id:         id,
		Name:       "Test Business",
		OwnerEmail: "owner@test.local",
	}
	return id
}

func seedPlan(store *fakeStore, businessId uuid.UUID, price string, interval entity.BillingInterval) *entity.Plan {
	plan := &entity.Plan{
		Id:              uuid.New(),
		BusinessId:      businessId,
		Name:            "Plan " + price,
		Price:           mustDecimal(price),
		BillingInterval: interval,
	}
	store.plans[plan.Id] = plan
	return plan
}

func seedCustomer(store *fakeStore, businessId uuid.UUID) *entity.Customer {
	customer := &entity.Customer{
		Id:         uuid.New(),
		BusinessId: businessId,
		FullName:   "Test Customer",
		Email:      "customer@test.local",
	}
	store.customers[customer.Id] = customer
	return customer
}

func seedSubscription(store *fakeStore, customer *entity.Customer, plan *entity.Plan, status entity.SubscriptionStatus, nextBilling time.Time) *entity.Subscription {
	sub := &entity.Subscription{
		Id:              uuid.New(),
		CustomerId:      customer.Id,
		PlanId:          plan.Id,
		Status:          status,
		StartDate:       nextBilling.AddDate(0, 0, -30),
		NextBillingDate: nextBilling,
	}
	store.subscriptions[sub.Id] = sub
	return sub
}
