package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedByBusiness scopes rows that carry business_id directly (plans, customers).
type OwnedByBusiness struct {
	BusinessID uuid.UUID
}

func (s OwnedByBusiness) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("business_id = ?", s.BusinessID)
}

// SubscriptionTenant scopes subscription rows through the owning customer.
// Subscriptions have no business_id column; tenancy is transitive via
// customers.business_id, enforced here so no query can cross tenants.
type SubscriptionTenant struct {
	BusinessID uuid.UUID
}

func (s SubscriptionTenant) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Select("subscriptions.*").
		Joins("JOIN customers ON customers.id = subscriptions.customer_id").
		Where("customers.business_id = ?", s.BusinessID)
}

// PaymentTenant scopes payment rows through subscription and customer.
type PaymentTenant struct {
	BusinessID uuid.UUID
}

func (s PaymentTenant) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Select("payments.*").
		Joins("JOIN subscriptions ON subscriptions.id = payments.subscription_id").
		Joins("JOIN customers ON customers.id = subscriptions.customer_id").
		Where("customers.business_id = ?", s.BusinessID)
}
