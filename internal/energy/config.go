package energy

import "wattmap.openenergy.dev/internal/appconf"

// Config holds the dataset configuration: where the CSV lives (local path
// or URL), where the derived SQLite mirror goes, and the environment.
type Config struct {
	DataSource string
	DBPath     string
	Env        appconf.Environment
	Verbose    bool
}
