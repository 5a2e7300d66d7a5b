package catalog

import "strings"

// fallbackProviderCount bounds the category-blind fallback result.
const fallbackProviderCount = 5

// ProviderDirectory matches repair categories against the loaded provider
// catalog. Read-only after construction.
type ProviderDirectory struct {
	providers []Provider
}

func NewProviderDirectory(providers []Provider) *ProviderDirectory {
	return &ProviderDirectory{providers: providers}
}

// FindMatching returns providers whose category equals the given one,
// case-insensitively. When no category matches, the first 5 catalog entries
// are returned instead: recommending someone beats recommending no one.
func (d *ProviderDirectory) FindMatching(category string) []Provider {
	var results []Provider

	for _, p := range d.providers {
		if strings.EqualFold(p.Category, category) {
			results = append(results, p)
		}
	}

	if len(results) == 0 {
		limit := fallbackProviderCount
		if len(d.providers) < limit {
			limit = len(d.providers)
		}
		results = append(results, d.providers[:limit]...)
	}

	return results
}
