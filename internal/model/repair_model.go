package model

import (
	"time"

	"github.com/google/uuid"
)

type RepairRequest struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	Category         string    `gorm:"type:text;not null"`
	Address          string    `gorm:"type:text;not null"`
	Description      string    `gorm:"type:text;not null"`
	ProviderSelected *string   `gorm:"type:text"`
	Status           string    `gorm:"type:text;not null;default:open"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (RepairRequest) TableName() string {
	return "repair_requests"
}
