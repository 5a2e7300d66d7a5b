package entity

import (
	"time"

	"github.com/google/uuid"
)

type RepairStatus string

const (
	RepairStatusOpen RepairStatus = "open"
)

type RepairRequest struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	Category         string
	Address          string
	Description      string
	ProviderSelected *string
	Status           RepairStatus
	CreatedAt        time.Time
}
