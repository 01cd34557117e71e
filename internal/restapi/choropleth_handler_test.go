package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoroplethHandlerDefaultsToLatestYear(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/energy/choropleth.json?key=TEST&source=wind")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromResponse(t, model)
	assert.Equal(t, float64(2021), entry["year"])
	assert.Equal(t, "wind", entry["source"])

	list, ok := entry["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 4)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "France", first["country"])
	assert.Equal(t, "FRA", first["code"])
	assert.Equal(t, 36.8, first["twh"])
}

func TestChoroplethHandlerExplicitYear(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/energy/choropleth.json?key=TEST&source=solar&year=2018")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromResponse(t, model)
	assert.Equal(t, float64(2018), entry["year"])

	list, ok := entry["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 4)
}

func TestChoroplethHandlerUnknownSourceYieldsEmptyList(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/energy/choropleth.json?key=TEST&source=coal")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromResponse(t, model)
	list, ok := entry["list"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, list)
}

func TestChoroplethHandlerRequiresSource(t *testing.T) {
	api := createTestApi(t)

	resp, fieldErrors := retrieveFieldErrors(t, api, "/api/energy/choropleth.json?key=TEST")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrors, "source")
}

func TestChoroplethHandlerInvalidYear(t *testing.T) {
	api := createTestApi(t)

	resp, fieldErrors := retrieveFieldErrors(t, api, "/api/energy/choropleth.json?key=TEST&source=wind&year=latest")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, fieldErrors, "year")
}
