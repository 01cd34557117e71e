package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/energydb"
	"wattmap.openenergy.dev/internal/energy"
	"wattmap.openenergy.dev/internal/models"
	"wattmap.openenergy.dev/internal/utils"
)

type trendData struct {
	Source    string          `json:"source"`
	StartYear int             `json:"startYear"`
	EndYear   int             `json:"endYear"`
	Series    []energy.Series `json:"series"`
}

// trendHandler returns a per-year TWh series for each requested country,
// for one source, within an inclusive year range. The range defaults to
// the dataset's full span.
func (api *RestAPI) trendHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	fieldErrors := make(map[string][]string)

	source := params.Get("source")
	if err := utils.ValidateSourceKey(source); err != nil {
		fieldErrors["source"] = append(fieldErrors["source"], err.Error())
	}

	countries := utils.ParseListParam(params, "country")
	if len(countries) == 0 {
		fieldErrors["country"] = append(fieldErrors["country"], "at least one country is required")
	}
	for _, country := range countries {
		if err := utils.ValidateCountryName(country); err != nil {
			fieldErrors["country"] = append(fieldErrors["country"], err.Error())
		}
	}

	startYear, okStart, _ := utils.ParseIntParam(params, "startYear", fieldErrors)
	endYear, okEnd, _ := utils.ParseIntParam(params, "endYear", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if !okStart {
		startYear = api.EnergyManager.FirstYear()
	}
	if !okEnd {
		endYear = api.EnergyManager.LatestYear()
	}
	if err := utils.ValidateYearRange(startYear, endYear); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"startYear": {err.Error()}})
		return
	}

	series := make([]energy.Series, 0, len(countries))
	for _, country := range countries {
		rows, err := api.EnergyManager.EnergyDB.Queries.YearlyTotalsForCountry(r.Context(), energydb.YearlyTotalsParams{
			Country:   country,
			Source:    source,
			StartYear: int64(startYear),
			EndYear:   int64(endYear),
		})
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}

		points := make([]energy.YearPoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, energy.YearPoint{Year: int(row.Year), TWh: row.TWh})
		}
		series = append(series, energy.Series{Name: country, Points: points})
	}

	api.sendResponse(w, r, models.NewEntryResponse(trendData{
		Source:    source,
		StartYear: startYear,
		EndYear:   endYear,
		Series:    series,
	}))
}
