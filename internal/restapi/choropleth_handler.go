package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/energydb"
	"wattmap.openenergy.dev/internal/energy"
	"wattmap.openenergy.dev/internal/models"
	"wattmap.openenergy.dev/internal/utils"
)

// choroplethEntry is one country's shading value for the world map.
type choroplethEntry struct {
	Country string  `json:"country"`
	Code    string  `json:"code"`
	TWh     float64 `json:"twh"`
}

type choroplethData struct {
	Year   int               `json:"year"`
	Source string            `json:"source"`
	List   []choroplethEntry `json:"list"`
}

// choroplethHandler returns per-country totals for one source and year.
// When no year is given, the dataset's most recent year is used.
func (api *RestAPI) choroplethHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	fieldErrors := make(map[string][]string)

	source := params.Get("source")
	if err := utils.ValidateSourceKey(source); err != nil {
		fieldErrors["source"] = append(fieldErrors["source"], err.Error())
	}

	year, ok, _ := utils.ParseIntParam(params, "year", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	if !ok {
		year = api.EnergyManager.LatestYear()
	}

	if energy.FindSource(source) == nil {
		// Unknown source key: an empty result, not an error.
		api.sendResponse(w, r, models.NewEntryResponse(choroplethData{
			Year: year, Source: source, List: []choroplethEntry{},
		}))
		return
	}

	rows, err := api.EnergyManager.EnergyDB.Queries.TotalsByCountry(r.Context(), energydb.TotalsByCountryParams{
		Year:   int64(year),
		Source: source,
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	list := make([]choroplethEntry, 0, len(rows))
	for _, row := range rows {
		list = append(list, choroplethEntry{Country: row.Country, Code: row.CountryCode, TWh: row.TWh})
	}

	api.sendResponse(w, r, models.NewEntryResponse(choroplethData{Year: year, Source: source, List: list}))
}
