package energy

import (
	"strings"

	"wattmap.openenergy.dev/internal/models"
)

// Criteria selects a subsequence of observations. Unset fields match
// everything. Criteria are AND-combined; values within Countries are
// OR-combined. Country matching is case-insensitive.
type Criteria struct {
	Year      *int
	StartYear *int
	EndYear   *int
	Countries []string
	Source    string
}

// IsEmpty returns true if no criteria are set.
func (c Criteria) IsEmpty() bool {
	return c.Year == nil && c.StartYear == nil && c.EndYear == nil &&
		len(c.Countries) == 0 && c.Source == ""
}

// Filter returns the observations matching all set criteria. It is a pure
// function: the input slice is never mutated and the result is always a
// newly allocated slice. An empty result is a valid outcome, not an error;
// criteria values absent from the dataset (a year nobody recorded, an
// unknown country) simply match nothing.
func Filter(observations []models.Observation, c Criteria) []models.Observation {
	matched := make([]models.Observation, 0)

	if len(observations) == 0 {
		return matched
	}
	if c.IsEmpty() {
		return append(matched, observations...)
	}

	countrySet := toLowerSet(c.Countries)

	for _, obs := range observations {
		if c.Year != nil && obs.Year != *c.Year {
			continue
		}
		if c.StartYear != nil && obs.Year < *c.StartYear {
			continue
		}
		if c.EndYear != nil && obs.Year > *c.EndYear {
			continue
		}
		if len(countrySet) > 0 && !countrySet[strings.ToLower(obs.Country)] {
			continue
		}
		if c.Source != "" && obs.Source != c.Source {
			continue
		}
		matched = append(matched, obs)
	}

	return matched
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
