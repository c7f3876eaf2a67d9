package specification

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StatusIs filters subscriptions by lifecycle status.
type StatusIs struct {
	Status string
}

func (s StatusIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscriptions.status = ?", s.Status)
}

// DueOnOrBefore selects subscriptions whose next billing date has arrived.
type DueOnOrBefore struct {
	Date time.Time
}

func (s DueOnOrBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscriptions.next_billing_date <= ?", datatypes.Date(s.Date))
}

// CanceledOnOrAfter selects subscriptions canceled on or after the given date.
// There is intentionally no upper bound; see the churn window notes in DESIGN.md.
type CanceledOnOrAfter struct {
	Date time.Time
}

func (s CanceledOnOrAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscriptions.cancellation_date >= ?", datatypes.Date(s.Date))
}

// CanceledBefore bounds the cancellation window from above (strict churn mode).
type CanceledBefore struct {
	Date time.Time
}

func (s CanceledBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscriptions.cancellation_date < ?", datatypes.Date(s.Date))
}
