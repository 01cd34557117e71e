package energydb

import (
	"database/sql"
	"fmt"
	"log"

	"wattmap.openenergy.dev/internal/appconf"
)

// createDB creates a new SQLite database holding the observations mirror.
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS observations (
			country      TEXT    NOT NULL,
			country_code TEXT    NOT NULL,
			year         INTEGER NOT NULL,
			source       TEXT    NOT NULL,
			twh          REAL    NOT NULL,
			PRIMARY KEY (country, year, source)
		);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating observations table: %w", err)
	}

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_observations_year ON observations(year);
		CREATE INDEX IF NOT EXISTS idx_observations_country ON observations(country);
		CREATE INDEX IF NOT EXISTS idx_observations_source ON observations(source);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}
