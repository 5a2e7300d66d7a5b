package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Property is one static listing from the property catalog file.
type Property struct {
	Id            int    `json:"id"`
	Title         string `json:"title"`
	PropertyType  string `json:"property_type"`
	PricePerMonth int    `json:"price_per_month"`
	Location      string `json:"location"`
	Bedrooms      int    `json:"bedrooms"`
	Furnished     bool   `json:"furnished"`
	HasGarden     bool   `json:"has_garden"`
	Parking       bool   `json:"parking"`
	Url           string `json:"url"`
}

// Provider is one static entry from the service-provider catalog file.
type Provider struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone,omitempty"`
	Email    string  `json:"email,omitempty"`
	Rating   float64 `json:"rating"`
}

const defaultProviderRating = 4.5

// LoadProperties reads the property catalog. Callers are expected to degrade
// to an empty catalog on error rather than abort startup.
func LoadProperties(path string) ([]Property, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read property catalog: %w", err)
	}

	var properties []Property
	if err := json.Unmarshal(raw, &properties); err != nil {
		return nil, fmt.Errorf("parse property catalog: %w", err)
	}
	return properties, nil
}

// LoadProviders reads the service-provider catalog. Entries without a rating
// get the default one.
func LoadProviders(path string) ([]Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read provider catalog: %w", err)
	}

	var providers []Provider
	if err := json.Unmarshal(raw, &providers); err != nil {
		return nil, fmt.Errorf("parse provider catalog: %w", err)
	}

	for i := range providers {
		if providers[i].Rating == 0 {
			providers[i].Rating = defaultProviderRating
		}
	}
	return providers, nil
}
