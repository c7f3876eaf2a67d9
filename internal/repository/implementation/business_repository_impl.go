package implementation

import (
	"context"
	"errors"

	"subhub-be/internal/entity"
	"subhub-be/internal/mapper"
	"subhub-be/internal/model"
	"subhub-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BusinessMapper
}

func NewBusinessRepository(db *gorm.DB) contract.BusinessRepository {
	return &BusinessRepositoryImpl{
		db:     db,
		mapper: mapper.NewBusinessMapper(),
	}
}

func (r *BusinessRepositoryImpl) Create(ctx context.Context, business *entity.Business) error {
	m := r.mapper.ToModel(business)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*business = *r.mapper.ToEntity(m)
	return nil
}

func (r *BusinessRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var m model.Business
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BusinessRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.Business, error) {
	var m model.Business
	if err := r.db.WithContext(ctx).Where("owner_email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
