package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/internal/energy"
	"wattmap.openenergy.dev/internal/models"
)

// observationsHandler returns the observation rows matching the request's
// filter criteria. Criteria left unset match everything; a combination
// absent from the dataset yields an empty list, which is a valid result,
// not an error.
func (api *RestAPI) observationsHandler(w http.ResponseWriter, r *http.Request) {
	criteria, fieldErrors := criteriaFromRequest(r)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	matched := energy.Filter(api.EnergyManager.Observations(), criteria)
	api.sendResponse(w, r, models.NewListResponse(matched))
}
