package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/internal/models"
)

// yearsHandler lists the distinct years present in the dataset, ascending.
func (api *RestAPI) yearsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewListResponse(api.EnergyManager.Years()))
}
