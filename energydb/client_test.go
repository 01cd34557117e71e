package energydb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"wattmap.openenergy.dev/internal/appconf"
	"wattmap.openenergy.dev/internal/models"
)

func createTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(NewConfig(":memory:", appconf.Test, false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	err = client.ImportObservations(context.Background(), []models.Observation{
		{Country: "France", CountryCode: "FRA", Year: 2019, Source: "solar", TWh: 11.6},
		{Country: "France", CountryCode: "FRA", Year: 2020, Source: "solar", TWh: 12.9},
		{Country: "France", CountryCode: "FRA", Year: 2020, Source: "wind", TWh: 39.7},
		{Country: "Germany", CountryCode: "DEU", Year: 2020, Source: "solar", TWh: 50.7},
		{Country: "Germany", CountryCode: "DEU", Year: 2021, Source: "solar", TWh: 50.0},
	})
	require.NoError(t, err)

	return client
}

func TestImportObservations(t *testing.T) {
	client := createTestClient(t)

	count, err := client.Queries.CountObservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.Greater(t, client.ImportRuntime().Nanoseconds(), int64(0))
}

func TestImportObservationsReplacesDuplicates(t *testing.T) {
	client := createTestClient(t)

	err := client.ImportObservations(context.Background(), []models.Observation{
		{Country: "France", CountryCode: "FRA", Year: 2020, Source: "solar", TWh: 99},
	})
	require.NoError(t, err)

	count, err := client.Queries.CountObservations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	totals, err := client.Queries.TotalsByCountry(context.Background(), TotalsByCountryParams{Year: 2020, Source: "solar"})
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, float64(99), totals[0].TWh)
}

func TestListCountries(t *testing.T) {
	client := createTestClient(t)

	countries, err := client.Queries.ListCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, CountryRow{Country: "France", CountryCode: "FRA"}, countries[0])
	assert.Equal(t, CountryRow{Country: "Germany", CountryCode: "DEU"}, countries[1])
}

func TestListYearsAndLatestYear(t *testing.T) {
	client := createTestClient(t)

	years, err := client.Queries.ListYears(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{2019, 2020, 2021}, years)

	latest, err := client.Queries.LatestYear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2021), latest)
}

func TestTotalsByCountry(t *testing.T) {
	client := createTestClient(t)

	totals, err := client.Queries.TotalsByCountry(context.Background(), TotalsByCountryParams{Year: 2020, Source: "solar"})
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, CountryTotalRow{Country: "France", CountryCode: "FRA", TWh: 12.9}, totals[0])
	assert.Equal(t, CountryTotalRow{Country: "Germany", CountryCode: "DEU", TWh: 50.7}, totals[1])
}

func TestTotalsByCountryNoMatches(t *testing.T) {
	client := createTestClient(t)

	totals, err := client.Queries.TotalsByCountry(context.Background(), TotalsByCountryParams{Year: 1900, Source: "solar"})
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestTotalsBySourceForYear(t *testing.T) {
	client := createTestClient(t)

	totals, err := client.Queries.TotalsBySourceForYear(context.Background(), 2020)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byt := make(map[string]float64, len(totals))
	for _, row := range totals {
		byt[row.Source] = row.TWh
	}
	assert.InDelta(t, 63.6, byt["solar"], 1e-9)
	assert.InDelta(t, 39.7, byt["wind"], 1e-9)
}

func TestYearlyTotalsForCountry(t *testing.T) {
	client := createTestClient(t)

	rows, err := client.Queries.YearlyTotalsForCountry(context.Background(), YearlyTotalsParams{
		Country:   "France",
		Source:    "solar",
		StartYear: 2019,
		EndYear:   2021,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, YearTotalRow{Year: 2019, TWh: 11.6}, rows[0])
	assert.Equal(t, YearTotalRow{Year: 2020, TWh: 12.9}, rows[1])
}

func TestYearlyTotalsForCountryCaseInsensitive(t *testing.T) {
	client := createTestClient(t)

	rows, err := client.Queries.YearlyTotalsForCountry(context.Background(), YearlyTotalsParams{
		Country:   "fRaNcE",
		Source:    "solar",
		StartYear: 2019,
		EndYear:   2021,
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, YearTotalRow{Year: 2019, TWh: 11.6}, rows[0])
}

func TestYearlyTotalsForCountryRangeExcludes(t *testing.T) {
	client := createTestClient(t)

	rows, err := client.Queries.YearlyTotalsForCountry(context.Background(), YearlyTotalsParams{
		Country:   "France",
		Source:    "solar",
		StartYear: 2020,
		EndYear:   2020,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2020), rows[0].Year)
}
