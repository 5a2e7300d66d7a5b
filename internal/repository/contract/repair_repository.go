package contract

import (
	"context"

	"property-assistant-be/internal/entity"
	"property-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RepairRepository interface {
	Create(ctx context.Context, request *entity.RepairRequest) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RepairRequest, error)
	UpdateProvider(ctx context.Context, id uuid.UUID, providerName string) error
}
