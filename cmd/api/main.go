package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"wattmap.openenergy.dev/internal/app"
	"wattmap.openenergy.dev/internal/appconf"
	"wattmap.openenergy.dev/internal/energy"
	"wattmap.openenergy.dev/internal/restapi"
	"wattmap.openenergy.dev/internal/webui"
)

func main() {
	// Deployment config may arrive via a .env file; flags still win.
	_ = godotenv.Load()

	var cfg appconf.Config
	var dataCfg energy.Config
	var envFlag string
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 4000), "API server port")
	flag.StringVar(&envFlag, "env", envString("ENV", "development"), "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", envString("API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", envInt("RATE_LIMIT", 100), "Requests per second allowed per API key (<0 disables)")
	flag.StringVar(&dataCfg.DataSource, "data", envString("DATA_SOURCE", "modern-renewable-prod.csv"),
		"Path or URL of the renewable production CSV")
	flag.StringVar(&dataCfg.DBPath, "db", envString("DB_PATH", "wattmap.db"), "Path of the derived SQLite mirror")
	flag.BoolVar(&dataCfg.Verbose, "verbose", false, "Verbose logging during data import")
	flag.Parse()

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	dataCfg.Env = cfg.Env

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	energyManager, err := energy.InitManager(dataCfg)
	if err != nil {
		// Fatal: the application is useless without its dataset.
		logger.Error("failed to load dataset", "source", dataCfg.DataSource, "error", err)
		os.Exit(1)
	}
	defer energyManager.Shutdown()

	energyManager.LogStatistics(logger)

	application := &app.Application{
		Config:        cfg,
		DataConfig:    dataCfg,
		Logger:        logger,
		EnergyManager: energyManager,
	}

	mux := http.NewServeMux()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(mux)

	webUI := webui.NewWebUI(application)
	webUI.SetWebUIRoutes(mux)

	handler := api.WithSecurityHeaders(mux)
	handler = restapi.CompressionMiddleware(handler)
	handler = restapi.NewRequestLoggingMiddleware(logger)(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fallback
	}
	return n
}
