package service

import (
	"context"
	"testing"
	"time"

	"subhub-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newBillingFixture(t *testing.T) (*fakeStore, IBillingService) {
	t.Helper()
	store := newFakeStore()
	factory := newFakeFactory(store)
	metrics := NewMetricsService(factory, time.Minute, false)
	svc := NewBillingService(factory, metrics, nil, nil, nopLogger{})
	return store, svc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRunBillingCycleChargesDueSubscriptions(t *testing.T) {
	store, svc := newBillingFixture(t)
	businessId := seedBusiness(store)
	plan := seedPlan(store, businessId, "29.99", entity.BillingIntervalMonthly)

	today := date(2024, 6, 15)

	dueCustomer := seedCustomer(store, businessId)
	due := seedSubscription(store, dueCustomer, plan, entity.SubscriptionStatusActive, date(2024, 6, 10))

	overdueCustomer := seedCustomer(store, businessId)
	overdue := seedSubscription(store, overdueCustomer, plan, entity.SubscriptionStatusActive, date(2024, 5, 1))

	notDueCustomer := seedCustomer(store, businessId)
	notDue := seedSubscription(store, notDueCustomer, plan, entity.SubscriptionStatusActive, date(2024, 7, 1))

	canceledCustomer := seedCustomer(store, businessId)
	canceled := seedSubscription(store, canceledCustomer, plan, entity.SubscriptionStatusCanceled, date(2024, 6, 1))

	res, err := svc.RunBillingCycle(context.Background(), businessId, today)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 0, res.Failed)

	assert.Len(t, store.payments, 2)
	for _, p := range store.payments {
		assert.True(t, p.Amount.Equal(mustDecimal("29.99")))
		assert.Equal(t, entity.PaymentStatusPaid, p.Status)
		assert.Equal(t, today, p.PaymentDate)
	}

	// Dates advance from their previous value, not from the run date.
	assert.Equal(t, date(2024, 7, 10), due.NextBillingDate)
	assert.Equal(t, date(2024, 5, 31), overdue.NextBillingDate)

	// Untouched subscriptions keep their dates.
	assert.Equal(t, date(2024, 7, 1), notDue.NextBillingDate)
	assert.Equal(t, date(2024, 6, 1), canceled.NextBillingDate)
}

func TestRunBillingCycleYearlyAdvance(t *testing.T) {
	store, svc := newBillingFixture(t)
	businessId := seedBusiness(store)
	plan := seedPlan(store, businessId, "299.00", entity.BillingIntervalYearly)

	customer := seedCustomer(store, businessId)
	sub := seedSubscription(store, customer, plan, entity.SubscriptionStatusActive, date(2024, 1, 1))

	res, err := svc.RunBillingCycle(context.Background(), businessId, date(2024, 1, 1))
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Processed)

	assert.Equal(t, date(2024, 12, 31), sub.NextBillingDate)
}

func TestRunBillingCycleChargesCurrentPlanPrice(t *testing.T) {
	store, svc := newBillingFixture(t)
	businessId := seedBusiness(store)
	plan := seedPlan(store, businessId, "10.00", entity.BillingIntervalMonthly)

	customer := seedCustomer(store, businessId)
	seedSubscription(store, customer, plan, entity.SubscriptionStatusActive, date(2024, 3, 1))

	// Price raised after the subscription started: the run charges the new price.
	plan.Price = mustDecimal("15.00")

	res, err := svc.RunBillingCycle(context.Background(), businessId, date(2024, 3, 1))
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Processed)

	assert.Len(t, store.payments, 1)
	assert.True(t, store.payments[0].Amount.Equal(mustDecimal("15.00")))
}

func TestRunBillingCycleOneFailureDoesNotStopOthers(t *testing.T) {
	store, svc := newBillingFixture(t)
	businessId := seedBusiness(store)
	plan := seedPlan(store, businessId, "20.00", entity.BillingIntervalMonthly)

	today := date(2024, 6, 1)

	okCustomer1 := seedCustomer(store, businessId)
	ok1 := seedSubscription(store, okCustomer1, plan, entity.SubscriptionStatusActive, today)

	failingCustomer := seedCustomer(store, businessId)
	failing := seedSubscription(store, failingCustomer, plan, entity.SubscriptionStatusActive, today)
	store.failPaymentFor[failing.Id] = true

	okCustomer2 := seedCustomer(store, businessId)
	ok2 := seedSubscription(store, okCustomer2, plan, entity.SubscriptionStatusActive, today)

	res, err := svc.RunBillingCycle(context.Background(), businessId, today)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.Failed)

	assert.Len(t, store.payments, 2)

	// Successful items advanced; the failed one stays due for the next run.
	assert.Equal(t, date(2024, 7, 1), ok1.NextBillingDate)
	assert.Equal(t, date(2024, 7, 1), ok2.NextBillingDate)
	assert.Equal(t, today, failing.NextBillingDate)
}

func TestRunBillingCycleDoesNotRebillSameDay(t *testing.T) {
	store, svc := newBillingFixture(t)
	businessId := seedBusiness(store)
	plan := seedPlan(store, businessId, "9.99", entity.BillingIntervalMonthly)

	customer := seedCustomer(store, businessId)
	seedSubscription(store, customer, plan, entity.SubscriptionStatusActive, date(2024, 2, 1))

	today := date(2024, 2, 1)

	first, err := svc.RunBillingCycle(context.Background(), businessId, today)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Processed)

	second, err := svc.RunBillingCycle(context.Background(), businessId, today)
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Processed)

	assert.Len(t, store.payments, 1)
}

func TestRunBillingCycleTenantIsolation(t *testing.T) {
	store, svc := newBillingFixture(t)
	businessA := seedBusiness(store)
	businessB := seedBusiness(store)

	plan := seedPlan(store, businessA, "10.00", entity.BillingIntervalMonthly)
	customer := seedCustomer(store, businessA)
	seedSubscription(store, customer, plan, entity.SubscriptionStatusActive, date(2024, 1, 1))

	res, err := svc.RunBillingCycle(context.Background(), businessB, date(2024, 6, 1))
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Processed)
	assert.Empty(t, store.payments)
}

func TestListPayments(t *testing.T) {
	store, svc := newBillingFixture(t)
	businessId := seedBusiness(store)
	plan := seedPlan(store, businessId, "10.00", entity.BillingIntervalMonthly)

	customer := seedCustomer(store, businessId)
	seedSubscription(store, customer, plan, entity.SubscriptionStatusActive, date(2024, 4, 1))

	_, err := svc.RunBillingCycle(context.Background(), businessId, date(2024, 4, 1))
	assert.NoError(t, err)

	payments, err := svc.ListPayments(context.Background(), businessId, 50, 0)
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, "10.00", payments[0].Amount)
	assert.Equal(t, "paid", payments[0].Status)
}
