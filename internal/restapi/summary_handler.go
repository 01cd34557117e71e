package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/internal/models"
)

// summaryHandler reports dataset-level statistics.
func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	summary := api.EnergyManager.Summary()

	// Cross-check against the mirror; a mismatch means the import is broken.
	count, err := api.EnergyManager.EnergyDB.Queries.CountObservations(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if int(count) != summary.ObservationCount {
		api.Logger.Warn("observation count mismatch between memory and mirror",
			"memory", summary.ObservationCount, "mirror", count)
	}

	api.sendResponse(w, r, models.NewEntryResponse(summary))
}
