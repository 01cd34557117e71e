package webui

import (
	"embed"
	"html/template"
	"net/http"

	"wattmap.openenergy.dev/internal/models"
)

//go:embed dashboard.html debug_index.html
var templateFS embed.FS

type dashboardData struct {
	Title          string
	Sources        []models.EnergySource
	Countries      []models.CountryRef
	Years          []int
	LatestYear     int
	FirstYear      int
	DefaultCountry string
}

// dashboardHandler renders the dashboard page: the filter controls and the
// chart panels, which load the /charts/* fragments.
func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFS(templateFS, "dashboard.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	manager := webUI.EnergyManager
	data := dashboardData{
		Title:          "Renewable Energy Production Dashboard",
		Sources:        manager.Sources(),
		Countries:      manager.Countries(),
		Years:          manager.Years(),
		LatestYear:     manager.LatestYear(),
		FirstYear:      manager.FirstYear(),
		DefaultCountry: defaultCountry(manager.Countries()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		webUI.Logger.Error("failed to render dashboard", "error", err)
	}
}

func defaultCountry(countries []models.CountryRef) string {
	for _, c := range countries {
		if c.Name == "Tunisia" {
			return c.Name
		}
	}
	if len(countries) > 0 {
		return countries[0].Name
	}
	return ""
}
