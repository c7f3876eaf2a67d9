package mapper

import (
	"time"

	"subhub-be/internal/entity"
	"subhub-be/internal/model"

	"gorm.io/datatypes"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	var cancellation *time.Time
	if s.CancellationDate != nil {
		t := time.Time(*s.CancellationDate)
		cancellation = &t
	}
	return &entity.Subscription{
		Id:               s.Id,
		CustomerId:       s.CustomerId,
		PlanId:           s.PlanId,
		Status:           entity.SubscriptionStatus(s.Status),
		StartDate:        time.Time(s.StartDate),
		NextBillingDate:  time.Time(s.NextBillingDate),
		CancellationDate: cancellation,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	var cancellation *datatypes.Date
	if s.CancellationDate != nil {
		d := datatypes.Date(*s.CancellationDate)
		cancellation = &d
	}
	return &model.Subscription{
		Id:               s.Id,
		CustomerId:       s.CustomerId,
		PlanId:           s.PlanId,
		Status:           string(s.Status),
		StartDate:        datatypes.Date(s.StartDate),
		NextBillingDate:  datatypes.Date(s.NextBillingDate),
		CancellationDate: cancellation,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
