package restapi

import (
	"net/http"

	"wattmap.openenergy.dev/internal/energy"
	"wattmap.openenergy.dev/internal/utils"
)

// criteriaFromRequest parses filter criteria from query parameters.
// Recognized parameters: year, startYear, endYear, country (repeatable or
// comma-separated), source. Unset parameters match everything. Returns the
// criteria and a fieldErrors map; the map is non-empty when a parameter is
// present but unparseable or malformed.
func criteriaFromRequest(r *http.Request) (energy.Criteria, map[string][]string) {
	params := r.URL.Query()
	fieldErrors := make(map[string][]string)

	var criteria energy.Criteria

	if year, ok, _ := utils.ParseIntParam(params, "year", fieldErrors); ok {
		criteria.Year = &year
	}
	if start, ok, _ := utils.ParseIntParam(params, "startYear", fieldErrors); ok {
		criteria.StartYear = &start
	}
	if end, ok, _ := utils.ParseIntParam(params, "endYear", fieldErrors); ok {
		criteria.EndYear = &end
	}

	if criteria.StartYear != nil && criteria.EndYear != nil {
		if err := utils.ValidateYearRange(*criteria.StartYear, *criteria.EndYear); err != nil {
			fieldErrors["startYear"] = append(fieldErrors["startYear"], err.Error())
		}
	}

	for _, country := range utils.ParseListParam(params, "country") {
		if err := utils.ValidateCountryName(country); err != nil {
			fieldErrors["country"] = append(fieldErrors["country"], err.Error())
			continue
		}
		criteria.Countries = append(criteria.Countries, country)
	}

	if source := params.Get("source"); source != "" {
		if err := utils.ValidateSourceKey(source); err != nil {
			fieldErrors["source"] = append(fieldErrors["source"], err.Error())
		} else {
			criteria.Source = source
		}
	}

	return criteria, fieldErrors
}
