package energydb

// ObservationRow is one row of the observations table.
type ObservationRow struct {
	Country     string
	CountryCode string
	Year        int64
	Source      string
	TWh         float64
}

// CountryRow is a distinct (country, country_code) pair.
type CountryRow struct {
	Country     string
	CountryCode string
}

// CountryTotalRow is the summed TWh for one country.
type CountryTotalRow struct {
	Country     string
	CountryCode string
	TWh         float64
}

// SourceTotalRow is the summed TWh for one energy source.
type SourceTotalRow struct {
	Source string
	TWh    float64
}

// YearTotalRow is the summed TWh for one year.
type YearTotalRow struct {
	Year int64
	TWh  float64
}
