package webui

import "net/http"

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", webUI.dashboardHandler)
	mux.HandleFunc("GET /charts/map", webUI.mapChartHandler)
	mux.HandleFunc("GET /charts/trend", webUI.trendChartHandler)
	mux.HandleFunc("GET /charts/breakdown", webUI.breakdownChartHandler)
	mux.HandleFunc("GET /charts/comparison", webUI.comparisonChartHandler)
	mux.HandleFunc("GET /charts/cumulative", webUI.cumulativeChartHandler)
	mux.HandleFunc("GET /debug/", webUI.debugIndexHandler)
}
