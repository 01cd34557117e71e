package energy

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"wattmap.openenergy.dev/energydb"
	"wattmap.openenergy.dev/internal/models"
)

// Manager owns the loaded dataset and provides read-only access to it.
// Everything here is immutable after InitManager returns, so concurrent
// readers need no locking.
type Manager struct {
	dataSource   string
	isLocalFile  bool
	observations []models.Observation
	countries    []models.CountryRef
	years        []int
	EnergyDB     *energydb.Client
	loadedAt     time.Time
	config       Config
	shutdownOnce sync.Once
}

// InitManager loads the dataset from the configured source (a local file
// path or a URL), normalizes it, and builds the SQLite mirror. A missing
// or malformed dataset is fatal: the application cannot start without it.
func InitManager(config Config) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.DataSource, "http://") && !strings.HasPrefix(config.DataSource, "https://")

	observations, err := loadObservations(config.DataSource, isLocalFile)
	if err != nil {
		return nil, err
	}
	if len(observations) == 0 {
		return nil, fmt.Errorf("dataset %s contains no usable observations", config.DataSource)
	}

	manager := &Manager{
		dataSource:   config.DataSource,
		isLocalFile:  isLocalFile,
		observations: observations,
		countries:    countryRefs(observations),
		years:        YearsOf(observations),
		loadedAt:     time.Now(),
		config:       config,
	}

	dbConfig := energydb.NewConfig(config.DBPath, config.Env, config.Verbose)
	client, err := energydb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create observations database client: %w", err)
	}

	if err := client.ImportObservations(context.Background(), observations); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("error building observations database: %w", err)
	}
	manager.EnergyDB = client

	return manager, nil
}

// Shutdown releases the manager's resources. Safe to call more than once.
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		if manager.EnergyDB != nil {
			_ = manager.EnergyDB.Close()
		}
	})
}

// Observations returns the full dataset. The slice is shared and must be
// treated as read-only; Filter and the aggregators never mutate it.
func (manager *Manager) Observations() []models.Observation {
	return manager.observations
}

// Sources returns the energy source table.
func (manager *Manager) Sources() []models.EnergySource {
	return Sources()
}

// Countries returns the countries present in the dataset, sorted by name.
func (manager *Manager) Countries() []models.CountryRef {
	return manager.countries
}

// Years returns the distinct years present in the dataset, ascending.
func (manager *Manager) Years() []int {
	return manager.years
}

// FirstYear returns the earliest year in the dataset.
func (manager *Manager) FirstYear() int {
	return manager.years[0]
}

// LatestYear returns the most recent year in the dataset.
func (manager *Manager) LatestYear() int {
	return manager.years[len(manager.years)-1]
}

// HasCountry reports whether the dataset contains the named country.
// Matching is case-insensitive, like Filter's.
func (manager *Manager) HasCountry(name string) bool {
	for _, c := range manager.countries {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

// Summary reports dataset-level statistics.
func (manager *Manager) Summary() models.DatasetSummary {
	return models.DatasetSummary{
		Source:           manager.dataSource,
		ObservationCount: len(manager.observations),
		CountryCount:     len(manager.countries),
		SourceCount:      len(Sources()),
		FirstYear:        manager.FirstYear(),
		LastYear:         manager.LatestYear(),
		LoadedAt:         manager.loadedAt.Format(time.RFC3339),
	}
}

// LogStatistics logs dataset statistics after a successful load.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	logger.Info("dataset loaded",
		"source", manager.dataSource,
		"local_file", manager.isLocalFile,
		"observations", len(manager.observations),
		"countries", len(manager.countries),
		"years", len(manager.years),
		"first_year", manager.FirstYear(),
		"last_year", manager.LatestYear(),
		"db_import_runtime", manager.EnergyDB.ImportRuntime().String(),
	)
}

func countryRefs(observations []models.Observation) []models.CountryRef {
	seen := make(map[string]bool)
	var refs []models.CountryRef
	for _, obs := range observations {
		if !seen[obs.Country] {
			seen[obs.Country] = true
			refs = append(refs, models.CountryRef{Name: obs.Country, Code: obs.CountryCode})
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs
}
