package energy

import "wattmap.openenergy.dev/internal/models"

// Source keys used throughout the API and the database.
const (
	SourceWind  = "wind"
	SourceSolar = "solar"
	SourceHydro = "hydro"
	SourceOther = "other_renewables"
)

// Sources is the canonical energy source table. Column headers match the
// OWID modern-renewable-prod CSV.
func Sources() []models.EnergySource {
	return []models.EnergySource{
		{Key: SourceWind, Label: "Wind Power", Column: "Electricity from wind - TWh"},
		{Key: SourceSolar, Label: "Solar Power", Column: "Electricity from solar - TWh"},
		{Key: SourceHydro, Label: "Hydro Power", Column: "Electricity from hydro - TWh"},
		{Key: SourceOther, Label: "Other Renewables", Column: "Other renewables including bioenergy - TWh"},
	}
}

// FindSource returns the source with the given key, or nil if unknown.
func FindSource(key string) *models.EnergySource {
	for _, s := range Sources() {
		if s.Key == key {
			return &s
		}
	}
	return nil
}
