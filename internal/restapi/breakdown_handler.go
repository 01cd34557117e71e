package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/internal/energy"
	"wattmap.openenergy.dev/internal/models"
)

type breakdownData struct {
	Year int                  `json:"year"`
	List []energy.SourceTotal `json:"list"`
}

// breakdownHandler returns per-source totals for one year, optionally
// restricted to a set of countries. When no year is given, the dataset's
// most recent year is used.
func (api *RestAPI) breakdownHandler(w http.ResponseWriter, r *http.Request) {
	criteria, fieldErrors := criteriaFromRequest(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if criteria.Year == nil {
		latest := api.EnergyManager.LatestYear()
		criteria.Year = &latest
	}

	matched := energy.Filter(api.EnergyManager.Observations(), criteria)
	totals := energy.TotalsBySource(matched)
	if totals == nil {
		totals = []energy.SourceTotal{}
	}

	api.sendResponse(w, r, models.NewEntryResponse(breakdownData{Year: *criteria.Year, List: totals}))
}
