package contract

import (
	"context"

	"property-assistant-be/internal/entity"
	"property-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RentalSearchRepository interface {
	Create(ctx context.Context, search *entity.RentalSearch) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RentalSearch, error)
}

type RentalMatchRepository interface {
	// CreateBatch persists all matches of one search. Callers are expected to
	// run it inside the same transaction that created the parent search row.
	CreateBatch(ctx context.Context, searchId uuid.UUID, matches []*entity.RentalMatch) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RentalMatch, error)
}
