package mapper

import (
	"property-assistant-be/internal/entity"
	"property-assistant-be/internal/model"
)

type RepairMapper struct{}

func NewRepairMapper() *RepairMapper {
	return &RepairMapper{}
}

func (m *RepairMapper) ToEntity(r *model.RepairRequest) *entity.RepairRequest {
	if r == nil {
		return nil
	}
	return &entity.RepairRequest{
		Id:               r.Id,
		UserId:           r.UserId,
		Category:         r.Category,
		Address:          r.Address,
		Description:      r.Description,
		ProviderSelected: r.ProviderSelected,
		Status:           entity.RepairStatus(r.Status),
		CreatedAt:        r.CreatedAt,
	}
}

func (m *RepairMapper) ToModel(r *entity.RepairRequest) *model.RepairRequest {
	if r == nil {
		return nil
	}
	return &model.RepairRequest{
		Id:               r.Id,
		UserId:           r.UserId,
		Category:         r.Category,
		Address:          r.Address,
		Description:      r.Description,
		ProviderSelected: r.ProviderSelected,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
	}
}

func (m *RepairMapper) ToEntities(requests []*model.RepairRequest) []*entity.RepairRequest {
	entities := make([]*entity.RepairRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
