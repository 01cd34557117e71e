package webui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wattmap.openenergy.dev/internal/app"
	"wattmap.openenergy.dev/internal/appconf"
	"wattmap.openenergy.dev/internal/energy"
)

// createTestWebUI creates a WebUI instance with an energy manager loaded
// from the test fixture.
func createTestWebUI(t *testing.T) *WebUI {
	dataConfig := energy.Config{
		DataSource: filepath.Join("../../testdata", "renewables.csv"),
		DBPath:     ":memory:",
		Env:        appconf.EnvFlagToEnvironment("test"),
	}
	energyManager, err := energy.InitManager(dataConfig)
	require.NoError(t, err)
	t.Cleanup(energyManager.Shutdown)

	return NewWebUI(&app.Application{
		Config: appconf.Config{
			Env: appconf.EnvFlagToEnvironment("test"),
		},
		DataConfig:    dataConfig,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		EnergyManager: energyManager,
	})
}

// retrievePage fetches a webui path and returns the response and body.
func retrievePage(t *testing.T, webUI *WebUI, path string) (*http.Response, string) {
	mux := http.NewServeMux()
	webUI.SetWebUIRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestDashboardHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Renewable Energy Production Dashboard")

	// Filter controls are populated from the dataset.
	assert.Contains(t, body, "Wind Power")
	assert.Contains(t, body, "France")
	assert.Contains(t, body, "2021")

	// Chart panels point at the fragment routes.
	assert.Contains(t, body, "/charts/map")
	assert.Contains(t, body, "/charts/trend")
	assert.Contains(t, body, "/charts/breakdown")
	assert.Contains(t, body, "/charts/comparison")
	assert.Contains(t, body, "/charts/cumulative")
}

func TestDefaultCountry(t *testing.T) {
	webUI := createTestWebUI(t)

	// Tunisia is preferred when present; otherwise the first country wins.
	assert.Equal(t, "Tunisia", defaultCountry(webUI.EnergyManager.Countries()))
	assert.Equal(t, "", defaultCountry(nil))
}

func TestMapChartHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/map?source=solar&year=2020")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "echarts")
	assert.Contains(t, body, "Global Solar Power Production in 2020")
}

func TestMapChartHandlerDefaults(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/map")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Global Wind Power Production in 2021")
}

func TestMapChartHandlerEmptySelection(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/map?source=wind&year=1900")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No data available for the selected filters.")
}

func TestTrendChartHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/trend?source=wind&country=France&country=Germany")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Wind Power Production Trends")
	assert.Contains(t, body, "France")
	assert.Contains(t, body, "Germany")
}

func TestTrendChartHandlerStripsMarkupFromCountryNames(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/trend?source=wind&country=%3Cb%3EFrance%3C/b%3E")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "<b>France</b>")
	assert.Contains(t, body, "Wind Power Production Trends")
	assert.Contains(t, body, "France")
}

func TestTrendChartHandlerEmptySelection(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/trend?source=wind&country=Atlantis")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No data available for the selected filters.")
}

func TestBreakdownChartHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/breakdown?year=2020&country=France")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Production Distribution in 2020")
	assert.Contains(t, body, "Hydro Power")
}

func TestComparisonChartHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/comparison?year=2021&country=France,Germany")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Production by Country and Source in 2021")
}

func TestCumulativeChartHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	resp, body := retrievePage(t, webUI, "/charts/cumulative?country=Tunisia&endYear=2020")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Cumulative Production Through 2020")
}

func TestDebugIndexHandler(t *testing.T) {
	webUI := createTestWebUI(t)

	t.Run("summary", func(t *testing.T) {
		resp, body := retrievePage(t, webUI, "/debug/?dataType=summary")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Dataset - Summary")
		assert.Contains(t, body, "ObservationCount")
	})

	t.Run("sources", func(t *testing.T) {
		resp, body := retrievePage(t, webUI, "/debug/?dataType=sources")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Wind Power")
	})

	t.Run("unknown data type", func(t *testing.T) {
		resp, body := retrievePage(t, webUI, "/debug/?dataType=bogus")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Choose a data type")
	})
}
