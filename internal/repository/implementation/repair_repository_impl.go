package implementation

import (
	"context"

	"property-assistant-be/internal/entity"
	"property-assistant-be/internal/mapper"
	"property-assistant-be/internal/model"
	"property-assistant-be/internal/repository/contract"
	"property-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RepairRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RepairMapper
}

func NewRepairRepository(db *gorm.DB) contract.RepairRepository {
	return &RepairRepositoryImpl{
		db:     db,
		mapper: mapper.NewRepairMapper(),
	}
}

func (r *RepairRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RepairRepositoryImpl) Create(ctx context.Context, request *entity.RepairRequest) error {
	modelRequest := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(modelRequest).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(modelRequest)
	return nil
}

func (r *RepairRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RepairRequest, error) {
	var modelRequests []*model.RepairRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRequests).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelRequests), nil
}

func (r *RepairRepositoryImpl) UpdateProvider(ctx context.Context, id uuid.UUID, providerName string) error {
	return r.db.WithContext(ctx).Model(&model.RepairRequest{}).
		Where("id = ?", id).
		Update("provider_selected", providerName).Error
}
