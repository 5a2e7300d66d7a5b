package mapper

import (
	"property-assistant-be/internal/entity"
	"property-assistant-be/internal/model"
)

type RentalMapper struct{}

func NewRentalMapper() *RentalMapper {
	return &RentalMapper{}
}

func (m *RentalMapper) SearchToEntity(s *model.RentalSearch) *entity.RentalSearch {
	if s == nil {
		return nil
	}
	return &entity.RentalSearch{
		Id:           s.Id,
		UserId:       s.UserId,
		Location:     s.Location,
		PropertyType: s.PropertyType,
		Bedrooms:     s.Bedrooms,
		Budget:       s.Budget,
		Furnished:    s.Furnished,
		Garden:       s.Garden,
		Parking:      s.Parking,
		Status:       entity.RentalSearchStatus(s.Status),
		CreatedAt:    s.CreatedAt,
	}
}

func (m *RentalMapper) SearchToModel(s *entity.RentalSearch) *model.RentalSearch {
	if s == nil {
		return nil
	}
	return &model.RentalSearch{
		Id:           s.Id,
		UserId:       s.UserId,
		Location:     s.Location,
		PropertyType: s.PropertyType,
		Bedrooms:     s.Bedrooms,
		Budget:       s.Budget,
		Furnished:    s.Furnished,
		Garden:       s.Garden,
		Parking:      s.Parking,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}
}

func (m *RentalMapper) SearchesToEntities(searches []*model.RentalSearch) []*entity.RentalSearch {
	entities := make([]*entity.RentalSearch, len(searches))
	for i, s := range searches {
		entities[i] = m.SearchToEntity(s)
	}
	return entities
}

func (m *RentalMapper) MatchToEntity(r *model.RentalMatch) *entity.RentalMatch {
	if r == nil {
		return nil
	}
	return &entity.RentalMatch{
		Id:            r.Id,
		SearchId:      r.SearchId,
		PropertyId:    r.PropertyId,
		Title:         r.Title,
		Location:      r.Location,
		PricePerMonth: r.PricePerMonth,
		Bedrooms:      r.Bedrooms,
		Furnished:     r.Furnished,
		HasGarden:     r.HasGarden,
		Parking:       r.Parking,
		Url:           r.Url,
		Score:         r.Score,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *RentalMapper) MatchToModel(r *entity.RentalMatch) *model.RentalMatch {
	if r == nil {
		return nil
	}
	return &model.RentalMatch{
		Id:            r.Id,
		SearchId:      r.SearchId,
		PropertyId:    r.PropertyId,
		Title:         r.Title,
		Location:      r.Location,
		PricePerMonth: r.PricePerMonth,
		Bedrooms:      r.Bedrooms,
		Furnished:     r.Furnished,
		HasGarden:     r.HasGarden,
		Parking:       r.Parking,
		Url:           r.Url,
		Score:         r.Score,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *RentalMapper) MatchesToEntities(matches []*model.RentalMatch) []*entity.RentalMatch {
	entities := make([]*entity.RentalMatch, len(matches))
	for i, r := range matches {
		entities[i] = m.MatchToEntity(r)
	}
	return entities
}

func (m *RentalMapper) MatchesToModels(matches []*entity.RentalMatch) []*model.RentalMatch {
	models := make([]*model.RentalMatch, len(matches))
	for i, r := range matches {
		models[i] = m.MatchToModel(r)
	}
	return models
}
