package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/internal/models"
)

// sourcesHandler lists the energy source categories, in the order the
// dashboard's dropdown presents them.
func (api *RestAPI) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.EnergyManager.Sources()))
}
