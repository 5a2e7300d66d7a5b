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

type RentalSearchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RentalMapper
}

func NewRentalSearchRepository(db *gorm.DB) contract.RentalSearchRepository {
	return &RentalSearchRepositoryImpl{
		db:     db,
		mapper: mapper.NewRentalMapper(),
	}
}

func (r *RentalSearchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RentalSearchRepositoryImpl) Create(ctx context.Context, search *entity.RentalSearch) error {
	modelSearch := r.mapper.SearchToModel(search)
	if err := r.db.WithContext(ctx).Create(modelSearch).Error; err != nil {
		return err
	}
	*search = *r.mapper.SearchToEntity(modelSearch)
	return nil
}

func (r *RentalSearchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RentalSearch, error) {
	var modelSearches []*model.RentalSearch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSearches).Error; err != nil {
		return nil, err
	}

	return r.mapper.SearchesToEntities(modelSearches), nil
}

type RentalMatchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RentalMapper
}

func NewRentalMatchRepository(db *gorm.DB) contract.RentalMatchRepository {
	return &RentalMatchRepositoryImpl{
		db:     db,
		mapper: mapper.NewRentalMapper(),
	}
}

func (r *RentalMatchRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RentalMatchRepositoryImpl) CreateBatch(ctx context.Context, searchId uuid.UUID, matches []*entity.RentalMatch) error {
	if len(matches) == 0 {
		return nil
	}

	modelMatches := make([]*model.RentalMatch, len(matches))
	for i, m := range matches {
		m.SearchId = searchId
		modelMatches[i] = r.mapper.MatchToModel(m)
	}

	if err := r.db.WithContext(ctx).Create(modelMatches).Error; err != nil {
		return err
	}

	for i, m := range modelMatches {
		*matches[i] = *r.mapper.MatchToEntity(m)
	}
	return nil
}

func (r *RentalMatchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RentalMatch, error) {
	var modelMatches []*model.RentalMatch
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMatches).Error; err != nil {
		return nil, err
	}

	return r.mapper.MatchesToEntities(modelMatches), nil
}
