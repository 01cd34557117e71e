package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/internal/models"
)

// countriesHandler lists the countries present in the dataset, sorted by name.
func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.EnergyManager.Countries()))
}
