package models

// Observation is one record of electricity production: a single
// (country, year, energy source) combination and its TWh value.
// The loaded dataset is an immutable ordered sequence of these rows.
type Observation struct {
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"` // ISO 3166-1 alpha-3
	Year        int     `json:"year"`
	Source      string  `json:"source"` // EnergySource key
	TWh         float64 `json:"twh"`
}

// EnergySource describes one of the renewable source categories tracked
// by the dataset. Column is the header of the source's column in the
// wide OWID CSV.
type EnergySource struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Column string `json:"-"`
}

// CountryRef identifies a country present in the dataset.
type CountryRef struct {
	Name string `json:"name"`
	Code string `json:"code"` // ISO 3166-1 alpha-3
}

// DatasetSummary reports dataset-level statistics for the summary endpoint.
type DatasetSummary struct {
	Source           string `json:"source"`
	ObservationCount int    `json:"observationCount"`
	CountryCount     int    `json:"countryCount"`
	SourceCount      int    `json:"sourceCount"`
	FirstYear        int    `json:"firstYear"`
	LastYear         int    `json:"lastYear"`
	LoadedAt         string `json:"loadedAt"`
}
