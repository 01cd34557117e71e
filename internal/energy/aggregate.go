package energy

import (
	"sort"

	"wattmap.openenergy.dev/internal/models"
)

// CountryTotal is the summed TWh for one country across the filtered rows.
type CountryTotal struct {
	Country string  `json:"country"`
	Code    string  `json:"code"`
	TWh     float64 `json:"twh"`
}

// SourceTotal is the summed TWh for one energy source.
type SourceTotal struct {
	Source string  `json:"source"`
	Label  string  `json:"label"`
	TWh    float64 `json:"twh"`
}

// YearPoint is one point of a per-year series.
type YearPoint struct {
	Year int     `json:"year"`
	TWh  float64 `json:"twh"`
}

// Series is a named per-year series (one country or one source).
type Series struct {
	Name   string      `json:"name"`
	Points []YearPoint `json:"points"`
}

// TotalsByCountry sums TWh per country, sorted by country name. The first
// observation seen for a country supplies its ISO code.
func TotalsByCountry(observations []models.Observation) []CountryTotal {
	totals := make(map[string]*CountryTotal)
	for _, obs := range observations {
		t, ok := totals[obs.Country]
		if !ok {
			t = &CountryTotal{Country: obs.Country, Code: obs.CountryCode}
			totals[obs.Country] = t
		}
		t.TWh += obs.TWh
	}

	out := make([]CountryTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out
}

// TotalsBySource sums TWh per energy source, in canonical source order.
// Sources with no matching rows are omitted.
func TotalsBySource(observations []models.Observation) []SourceTotal {
	sums := make(map[string]float64)
	seen := make(map[string]bool)
	for _, obs := range observations {
		sums[obs.Source] += obs.TWh
		seen[obs.Source] = true
	}

	var out []SourceTotal
	for _, s := range Sources() {
		if seen[s.Key] {
			out = append(out, SourceTotal{Source: s.Key, Label: s.Label, TWh: sums[s.Key]})
		}
	}
	return out
}

// SeriesByCountry groups observations by country and sums TWh per year
// within each group. Series are sorted by country name, points by year.
func SeriesByCountry(observations []models.Observation) []Series {
	return seriesBy(observations, func(obs models.Observation) string { return obs.Country })
}

// SeriesBySource groups observations by energy source and sums TWh per year
// within each group. Series follow the canonical source order.
func SeriesBySource(observations []models.Observation) []Series {
	series := seriesBy(observations, func(obs models.Observation) string { return obs.Source })

	byKey := make(map[string]Series, len(series))
	for _, s := range series {
		byKey[s.Name] = s
	}

	out := make([]Series, 0, len(series))
	for _, src := range Sources() {
		if s, ok := byKey[src.Key]; ok {
			s.Name = src.Label
			out = append(out, s)
		}
	}
	return out
}

func seriesBy(observations []models.Observation, keyOf func(models.Observation) string) []Series {
	grouped := make(map[string]map[int]float64)
	for _, obs := range observations {
		key := keyOf(obs)
		if grouped[key] == nil {
			grouped[key] = make(map[int]float64)
		}
		grouped[key][obs.Year] += obs.TWh
	}

	out := make([]Series, 0, len(grouped))
	for name, byYear := range grouped {
		points := make([]YearPoint, 0, len(byYear))
		for year, twh := range byYear {
			points = append(points, YearPoint{Year: year, TWh: twh})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
		out = append(out, Series{Name: name, Points: points})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Cumulative converts a per-year series into a running total. The input
// is not modified.
func Cumulative(points []YearPoint) []YearPoint {
	out := make([]YearPoint, len(points))
	var running float64
	for i, p := range points {
		running += p.TWh
		out[i] = YearPoint{Year: p.Year, TWh: running}
	}
	return out
}

// YearsOf returns the sorted distinct years present in the observations.
func YearsOf(observations []models.Observation) []int {
	seen := make(map[int]bool)
	var years []int
	for _, obs := range observations {
		if !seen[obs.Year] {
			seen[obs.Year] = true
			years = append(years, obs.Year)
		}
	}
	sort.Ints(years)
	return years
}
