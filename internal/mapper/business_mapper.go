package mapper

import (
	"subhub-be/internal/entity"
	"subhub-be/internal/model"
)

type BusinessMapper struct{}

func NewBusinessMapper() *BusinessMapper {
	return &BusinessMapper{}
}

func (m *BusinessMapper) ToEntity(b *model.Business) *entity.Business {
	if b == nil {
		return nil
	}
	return &entity.Business{
		Id:           b.Id,
		Name:         b.Name,
		OwnerEmail:   b.OwnerEmail,
		PasswordHash: b.PasswordHash,
		CreatedAt:    b.CreatedAt,
	}
}

func (m *BusinessMapper) ToModel(b *entity.Business) *model.Business {
	if b == nil {
		return nil
	}
	return &model.Business{
		Id:           b.Id,
		Name:         b.Name,
		OwnerEmail:   b.OwnerEmail,
		PasswordHash: b.PasswordHash,
		CreatedAt:    b.CreatedAt,
	}
}
