package catalog

import (
	"sort"
	"strings"
)

// Requirement is a completed rental requirement. Nil fields were never
// specified by the user: they contribute zero points and never penalize.
type Requirement struct {
	Location     string
	PropertyType string
	Bedrooms     *int
	Budget       *int
	Furnished    *bool
	Garden       *bool
	Parking      *bool
}

// Match pairs a listing with its relevance score against a requirement.
type Match struct {
	Property
	Score int
}

// maxMatches caps how many ranked listings a search returns.
const maxMatches = 6

// maxScore bounds a listing's relevance score.
const maxScore = 115

// RentalMatcher scores requirements against the loaded property catalog.
// The catalog is read-only after construction, so the matcher is safe for
// concurrent use.
type RentalMatcher struct {
	properties []Property
}

func NewRentalMatcher(properties []Property) *RentalMatcher {
	return &RentalMatcher{properties: properties}
}

// Score computes the additive relevance of one listing: location +30,
// property type +20, bedrooms +20, budget +25, furnished +10, garden +10,
// parking +10, capped at 115.
func (m *RentalMatcher) Score(req Requirement, p Property) int {
	score := 0

	if req.Location != "" {
		if strings.Contains(strings.ToLower(p.Location), strings.ToLower(req.Location)) {
			score += 30
		}
	}

	if req.PropertyType != "" {
		if strings.Contains(strings.ToLower(p.PropertyType), strings.ToLower(req.PropertyType)) {
			score += 20
		}
	}

	if req.Bedrooms != nil {
		if p.Bedrooms >= *req.Bedrooms {
			score += 20
		}
	}

	if req.Budget != nil {
		if p.PricePerMonth <= *req.Budget {
			score += 25
		}
	}

	if req.Furnished != nil {
		if *req.Furnished == p.Furnished {
			score += 10
		}
	}

	if req.Garden != nil && *req.Garden {
		if p.HasGarden {
			score += 10
		}
	}

	if req.Parking != nil && *req.Parking {
		if p.Parking {
			score += 10
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// FindMatches scores every listing, discards zero scores, and returns at
// most the top 6 ranked descending. The sort is stable: ties keep catalog
// order.
func (m *RentalMatcher) FindMatches(req Requirement) []Match {
	var results []Match

	for _, p := range m.properties {
		score := m.Score(req, p)
		if score > 0 {
			results = append(results, Match{Property: p, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxMatches {
		results = results[:maxMatches]
	}
	return results
}
