package energydb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"wattmap.openenergy.dev/internal/models"
)

// Client is the main entry point for the observations mirror.
type Client struct {
	config        Config
	DB            *sql.DB
	Queries       *Queries
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration.
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create observations database: %w", err)
	}
	if config.verbose {
		log.Println("Successfully created observations table")
	}

	return &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime reports how long the last ImportObservations call took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

const insertObservation = `
INSERT OR REPLACE INTO observations (country, country_code, year, source, twh)
VALUES (?, ?, ?, ?, ?)
`

// ImportObservations bulk-inserts the normalized dataset inside a single
// transaction. The mirror is derived data: it is rebuilt on every startup
// and never written again afterwards.
func (c *Client) ImportObservations(ctx context.Context, observations []models.Observation) error {
	start := time.Now()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting import transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, insertObservation)
	if err != nil {
		return fmt.Errorf("error preparing insert: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, obs := range observations {
		_, err = stmt.ExecContext(ctx, obs.Country, obs.CountryCode, obs.Year, obs.Source, obs.TWh)
		if err != nil {
			return fmt.Errorf("error inserting observation (%s, %d, %s): %w",
				obs.Country, obs.Year, obs.Source, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing import: %w", err)
	}

	c.importRuntime = time.Since(start)
	return nil
}
