package energydb

import "wattmap.openenergy.dev/internal/appconf"

type Config struct {
	DBPath  string
	Env     appconf.Environment
	verbose bool
}

// NewConfig builds an energydb Config.
func NewConfig(dbPath string, env appconf.Environment, verbose bool) Config {
	return Config{DBPath: dbPath, Env: env, verbose: verbose}
}
