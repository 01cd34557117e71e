package app

import (
	"log/slog"

	"wattmap.openenergy.dev/internal/appconf"
	"wattmap.openenergy.dev/internal/energy"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a logger, and the dataset manager.
type Application struct {
	Config        appconf.Config
	DataConfig    energy.Config
	Logger        *slog.Logger
	EnergyManager *energy.Manager
}
