package energy

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/biter777/countries"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"wattmap.openenergy.dev/internal/models"
)

const (
	entityColumn = "Entity"
	yearColumn   = "Year"
)

// rawCSVData reads the dataset bytes from a local file or a URL.
func rawCSVData(source string, isLocalFile bool) ([]byte, error) {
	var b []byte
	var err error

	if isLocalFile {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local dataset file: %w", err)
		}
	} else {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading dataset: %w", err)
		}
		defer resp.Body.Close() // nolint

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading dataset: %w", err)
		}
	}
	return b, nil
}

// loadObservations loads the wide OWID CSV and normalizes it into long
// Observation rows: one row per (country, year, source). Missing TWh cells
// become 0, and entities without an ISO 3166-1 alpha-3 code (aggregates
// like "World" or "Africa") are dropped.
func loadObservations(source string, isLocalFile bool) ([]models.Observation, error) {
	b, err := rawCSVData(source, isLocalFile)
	if err != nil {
		return nil, err
	}

	// Cells are re-parsed below with missing values treated as 0, so the
	// frame is read as strings rather than letting gota guess column types.
	df := dataframe.ReadCSV(bytes.NewReader(b),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("error parsing dataset CSV: %w", df.Err)
	}

	records := df.Records()
	if len(records) < 1 {
		return nil, fmt.Errorf("dataset CSV is empty")
	}

	colIndex := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		colIndex[strings.TrimSpace(name)] = i
	}

	entityIdx, ok := colIndex[entityColumn]
	if !ok {
		return nil, fmt.Errorf("dataset CSV is missing the %q column", entityColumn)
	}
	yearIdx, ok := colIndex[yearColumn]
	if !ok {
		return nil, fmt.Errorf("dataset CSV is missing the %q column", yearColumn)
	}

	srcs := Sources()
	sourceIdx := make([]int, len(srcs))
	for i, s := range srcs {
		idx, ok := colIndex[s.Column]
		if !ok {
			return nil, fmt.Errorf("dataset CSV is missing the %q column", s.Column)
		}
		sourceIdx[i] = idx
	}

	isoCache := make(map[string]string)
	var observations []models.Observation

	for _, row := range records[1:] {
		entity := strings.TrimSpace(row[entityIdx])
		if entity == "" {
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[yearIdx]))
		if err != nil {
			continue // skip rows with a malformed year
		}

		iso, ok := isoCache[entity]
		if !ok {
			iso = isoAlpha3(entity)
			isoCache[entity] = iso
		}
		if iso == "" {
			// Not a country: "World", continents, income groups.
			continue
		}

		for i, s := range srcs {
			observations = append(observations, models.Observation{
				Country:     entity,
				CountryCode: iso,
				Year:        year,
				Source:      s.Key,
				TWh:         parseTWh(row[sourceIdx[i]]),
			})
		}
	}

	return observations, nil
}

// parseTWh parses a TWh cell. The dataset leaves cells blank where a
// country reported nothing, so blanks and malformed values count as 0.
func parseTWh(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "NaN" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// isoAlpha3 maps an entity name to its ISO 3166-1 alpha-3 code, or ""
// when the entity is not a country.
func isoAlpha3(entity string) string {
	c := countries.ByName(entity)
	if c == countries.Unknown {
		return ""
	}
	return c.Alpha3()
}
