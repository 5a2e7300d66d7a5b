package unitofwork

import (
	"context"

	"property-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	RentalSearchRepository() contract.RentalSearchRepository
	RentalMatchRepository() contract.RentalMatchRepository
	RepairRepository() contract.RepairRepository
}
