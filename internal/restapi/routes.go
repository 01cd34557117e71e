package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// guard chains the rate limiter and API key check in front of a handler.
func (api *RestAPI) guard(finalHandler handlerFunc) http.Handler {
	h := validateAPIKey(api, finalHandler)
	if api.rateLimiter != nil {
		h = api.rateLimiter(h)
	}
	return h
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/energy/sources.json", api.guard(api.sourcesHandler))
	mux.Handle("GET /api/energy/countries.json", api.guard(api.countriesHandler))
	mux.Handle("GET /api/energy/years.json", api.guard(api.yearsHandler))
	mux.Handle("GET /api/energy/observations.json", api.guard(api.observationsHandler))
	mux.Handle("GET /api/energy/choropleth.json", api.guard(api.choroplethHandler))
	mux.Handle("GET /api/energy/trend.json", api.guard(api.trendHandler))
	mux.Handle("GET /api/energy/breakdown.json", api.guard(api.breakdownHandler))
	mux.Handle("GET /api/energy/summary.json", api.guard(api.summaryHandler))
}
