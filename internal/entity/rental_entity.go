package entity

import (
	"time"

	"github.com/google/uuid"
)

type RentalSearchStatus string

const (
	RentalSearchStatusPending RentalSearchStatus = "pending"
)

// RentalSearch is the persisted snapshot of a completed rental requirement.
// Optional fields stay nil when the user never specified a preference.
type RentalSearch struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Location     *string
	PropertyType *string
	Bedrooms     *int
	Budget       *int
	Furnished    *bool
	Garden       *bool
	Parking      *bool
	Status       RentalSearchStatus
	CreatedAt    time.Time
}

// RentalMatch denormalizes the matched listing so the stored result survives
// later catalog edits.
type RentalMatch struct {
	Id            uuid.UUID
	SearchId      uuid.UUID
	PropertyId    int
	Title         string
	Location      string
	PricePerMonth int
	Bedrooms      int
	Furnished     bool
	HasGarden     *bool
	Parking       *bool
	Url           string
	Score         int
	CreatedAt     time.Time
}
