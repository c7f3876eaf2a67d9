package implementation

import (
	"context"
	"errors"
	"time"

	"subhub-be/internal/entity"
	"subhub-be/internal/mapper"
	"subhub-be/internal/model"
	"subhub-be/internal/repository/contract"
	"subhub-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindByID(ctx context.Context, businessId, id uuid.UUID) (*entity.Subscription, error) {
	var m model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}),
		specification.SubscriptionTenant{BusinessID: businessId},
	).Where("subscriptions.id = ?", id)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, businessId uuid.UUID) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}),
		specification.SubscriptionTenant{BusinessID: businessId},
		specification.OrderBy{Field: "subscriptions.created_at"},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) ListDue(ctx context.Context, businessId uuid.UUID, today time.Time) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}),
		specification.SubscriptionTenant{BusinessID: businessId},
		specification.StatusIs{Status: string(entity.SubscriptionStatusActive)},
		specification.DueOnOrBefore{Date: today},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

type billingLineRow struct {
	Id              uuid.UUID
	Price           decimal.Decimal
	BillingInterval string
}

func (r *SubscriptionRepositoryImpl) ListActiveBillingLines(ctx context.Context, businessId uuid.UUID) ([]*entity.BillingLine, error) {
	var rows []billingLineRow
	err := r.db.WithContext(ctx).Table("subscriptions").
		Select("subscriptions.id, plans.price, plans.billing_interval").
		Joins("JOIN customers ON customers.id = subscriptions.customer_id").
		Joins("JOIN plans ON plans.id = subscriptions.plan_id").
		Where("customers.business_id = ?", businessId).
		Where("subscriptions.status = ?", string(entity.SubscriptionStatusActive)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]*entity.BillingLine, len(rows))
	for i, row := range rows {
		lines[i] = &entity.BillingLine{
			SubscriptionId:  row.Id,
			Price:           row.Price,
			BillingInterval: entity.BillingInterval(row.BillingInterval),
		}
	}
	return lines, nil
}

func (r *SubscriptionRepositoryImpl) CountByBusiness(ctx context.Context, businessId uuid.UUID) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}),
		specification.SubscriptionTenant{BusinessID: businessId},
	)
	err := query.Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CountActiveByBusiness(ctx context.Context, businessId uuid.UUID) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}),
		specification.SubscriptionTenant{BusinessID: businessId},
		specification.StatusIs{Status: string(entity.SubscriptionStatusActive)},
	)
	err := query.Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CountCanceledOnOrAfter(ctx context.Context, businessId uuid.UUID, since time.Time) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}),
		specification.SubscriptionTenant{BusinessID: businessId},
		specification.CanceledOnOrAfter{Date: since},
	)
	err := query.Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CountCanceledWithin(ctx context.Context, businessId uuid.UUID, from, until time.Time) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}),
		specification.SubscriptionTenant{BusinessID: businessId},
		specification.CanceledOnOrAfter{Date: from},
		specification.CanceledBefore{Date: until},
	)
	err := query.Count(&count).Error
	return count, err
}
