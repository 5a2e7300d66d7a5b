package dto

import (
	"time"

	"github.com/google/uuid"
)

type GetAllUsersResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type GetAllRentalSearchesResponse struct {
	Id           uuid.UUID `json:"id"`
	UserId       uuid.UUID `json:"user_id"`
	Location     *string   `json:"location,omitempty"`
	PropertyType *string   `json:"property_type,omitempty"`
	Bedrooms     *int      `json:"bedrooms,omitempty"`
	Budget       *int      `json:"budget,omitempty"`
	Furnished    *bool     `json:"furnished,omitempty"`
	Garden       *bool     `json:"garden,omitempty"`
	Parking      *bool     `json:"parking,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type GetAllRentalMatchesResponse struct {
	Id            uuid.UUID `json:"id"`
	SearchId      uuid.UUID `json:"search_id"`
	PropertyId    int       `json:"property_id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	PricePerMonth int       `json:"price_per_month"`
	Bedrooms      int       `json:"bedrooms"`
	Furnished     bool      `json:"furnished"`
	HasGarden     *bool     `json:"has_garden,omitempty"`
	Parking       *bool     `json:"parking,omitempty"`
	Url           string    `json:"url"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"created_at"`
}

type GetAllRepairRequestsResponse struct {
	Id               uuid.UUID `json:"id"`
	UserId           uuid.UUID `json:"user_id"`
	Category         string    `json:"category"`
	Address          string    `json:"address"`
	Description      string    `json:"description"`
	ProviderSelected *string   `json:"provider_selected,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
