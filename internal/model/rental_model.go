package model

import (
	"time"

	"github.com/google/uuid"
)

type RentalSearch struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Location     *string   `gorm:"type:text"`
	PropertyType *string   `gorm:"type:text"`
	Bedrooms     *int
	Budget       *int
	Furnished    *bool
	Garden       *bool
	Parking      *bool
	Status       string    `gorm:"type:text;not null;default:pending"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (RentalSearch) TableName() string {
	return "rental_searches"
}

type RentalMatch struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SearchId      uuid.UUID `gorm:"type:uuid;not null;index"`
	PropertyId    int       `gorm:"not null"`
	Title         string    `gorm:"type:text;not null"`
	Location      string    `gorm:"type:text;not null"`
	PricePerMonth int       `gorm:"not null"`
	Bedrooms      int       `gorm:"not null"`
	Furnished     bool
	HasGarden     *bool
	Parking       *bool
	Url           string    `gorm:"type:text;not null"`
	Score         int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (RentalMatch) TableName() string {
	return "rental_matches"
}
