package mapper

import (
	"subhub-be/internal/entity"
	"subhub-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:              p.Id,
		BusinessId:      p.BusinessId,
		Name:            p.Name,
		Price:           p.Price,
		BillingInterval: entity.BillingInterval(p.BillingInterval),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:              p.Id,
		BusinessId:      p.BusinessId,
		Name:            p.Name,
		Price:           p.Price,
		BillingInterval: string(p.BillingInterval),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
