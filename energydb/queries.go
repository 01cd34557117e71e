package energydb

import (
	"context"
	"database/sql"
)

// DBTX is the subset of *sql.DB / *sql.Tx the queries need.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries wraps a DBTX with typed query methods.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const listCountries = `
SELECT DISTINCT country, country_code FROM observations ORDER BY country
`

// ListCountries returns every distinct country in the mirror, sorted by name.
func (q *Queries) ListCountries(ctx context.Context) ([]CountryRow, error) {
	rows, err := q.db.QueryContext(ctx, listCountries)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var items []CountryRow
	for rows.Next() {
		var c CountryRow
		if err := rows.Scan(&c.Country, &c.CountryCode); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const listYears = `
SELECT DISTINCT year FROM observations ORDER BY year
`

// ListYears returns every distinct year in the mirror, ascending.
func (q *Queries) ListYears(ctx context.Context) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, listYears)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var years []int64
	for rows.Next() {
		var y int64
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

const latestYear = `
SELECT COALESCE(MAX(year), 0) FROM observations
`

// LatestYear returns the most recent year in the mirror, or 0 when empty.
func (q *Queries) LatestYear(ctx context.Context) (int64, error) {
	var y int64
	err := q.db.QueryRowContext(ctx, latestYear).Scan(&y)
	return y, err
}

const totalsByCountry = `
SELECT country, country_code, SUM(twh)
FROM observations
WHERE year = ? AND source = ?
GROUP BY country, country_code
ORDER BY country
`

type TotalsByCountryParams struct {
	Year   int64
	Source string
}

// TotalsByCountry sums TWh per country for one year and source.
func (q *Queries) TotalsByCountry(ctx context.Context, params TotalsByCountryParams) ([]CountryTotalRow, error) {
	rows, err := q.db.QueryContext(ctx, totalsByCountry, params.Year, params.Source)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var items []CountryTotalRow
	for rows.Next() {
		var t CountryTotalRow
		if err := rows.Scan(&t.Country, &t.CountryCode, &t.TWh); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const totalsBySourceForYear = `
SELECT source, SUM(twh)
FROM observations
WHERE year = ?
GROUP BY source
`

// TotalsBySourceForYear sums TWh per source across all countries for one year.
func (q *Queries) TotalsBySourceForYear(ctx context.Context, year int64) ([]SourceTotalRow, error) {
	rows, err := q.db.QueryContext(ctx, totalsBySourceForYear, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var items []SourceTotalRow
	for rows.Next() {
		var t SourceTotalRow
		if err := rows.Scan(&t.Source, &t.TWh); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const yearlyTotalsForCountry = `
SELECT year, SUM(twh)
FROM observations
WHERE country = ? COLLATE NOCASE AND source = ? AND year BETWEEN ? AND ?
GROUP BY year
ORDER BY year
`

type YearlyTotalsParams struct {
	Country   string
	Source    string
	StartYear int64
	EndYear   int64
}

// YearlyTotalsForCountry sums TWh per year for one country and source
// within an inclusive year range. Country matching is case-insensitive,
// like the in-memory filter's.
func (q *Queries) YearlyTotalsForCountry(ctx context.Context, params YearlyTotalsParams) ([]YearTotalRow, error) {
	rows, err := q.db.QueryContext(ctx, yearlyTotalsForCountry,
		params.Country, params.Source, params.StartYear, params.EndYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var items []YearTotalRow
	for rows.Next() {
		var t YearTotalRow
		if err := rows.Scan(&t.Year, &t.TWh); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const countObservations = `
SELECT COUNT(*) FROM observations
`

// CountObservations returns the number of rows in the mirror.
func (q *Queries) CountObservations(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countObservations).Scan(&n)
	return n, err
}
