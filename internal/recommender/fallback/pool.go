// Package fallback holds the static candidate pool served when the catalog
// store is unreachable or returns nothing. Pool candidates enter the pipeline
// unscored and flow through the same scoring and personalization stages as
// store rows.
package fallback

import (
	"strings"

	"car-recommender/internal/common/logger"
	"car-recommender/internal/models"
	"car-recommender/internal/vocab"
)

var pool = []models.Candidate{
	{
		ID: "fallback_1", Name: "Toyota Corolla 2024", Brand: "Toyota", Model: "Corolla",
		Year: 2024, Price: 25000, VehicleType: vocab.TypeSedan, Fuel: vocab.FuelGasoline,
		Transmission: vocab.TransmissionAutomatic,
		Features:     []string{"Aire acondicionado", "Radio AM/FM", "Bluetooth", "Cámara trasera", "Seguridad Toyota Safety"},
	},
	{
		ID: "fallback_2", Name: "Honda CR-V 2024", Brand: "Honda", Model: "CR-V",
		Year: 2024, Price: 35000, VehicleType: vocab.TypeSUV, Fuel: vocab.FuelGasoline,
		Transmission: vocab.TransmissionAutomatic,
		Features:     []string{"Espacio familiar", "Asientos cómodos", "Honda Sensing", "Amplio maletero"},
	},
	{
		ID: "fallback_3", Name: "BMW M3 2024", Brand: "BMW", Model: "M3",
		Year: 2024, Price: 75000, VehicleType: vocab.TypeCoupe, Fuel: vocab.FuelGasoline,
		Transmission: vocab.TransmissionManual,
		Features:     []string{"Motor turbo", "Deportivo", "Asientos sport", "Performance premium"},
	},
	{
		ID: "fallback_4", Name: "Mercedes-Benz S-Class 2024", Brand: "Mercedes-Benz", Model: "S-Class",
		Year: 2024, Price: 95000, VehicleType: vocab.TypeSedan, Fuel: vocab.FuelGasoline,
		Transmission: vocab.TransmissionAutomatic,
		Features:     []string{"Asientos de cuero premium", "Lujo alemán", "Tecnología avanzada", "Confort superior"},
	},
	{
		ID: "fallback_5", Name: "Tesla Model Y 2024", Brand: "Tesla", Model: "Model Y",
		Year: 2024, Price: 55000, VehicleType: vocab.TypeSUV, Fuel: vocab.FuelElectric,
		Transmission: vocab.TransmissionAutomatic,
		Features:     []string{"Piloto automático", "Pantalla táctil", "Carga rápida", "Tecnología verde"},
	},
	{
		ID: "fallback_6", Name: "Ford Mustang GT 2024", Brand: "Ford", Model: "Mustang GT",
		Year: 2024, Price: 45000, VehicleType: vocab.TypeCoupe, Fuel: vocab.FuelGasoline,
		Transmission: vocab.TransmissionManual,
		Features:     []string{"Motor V8", "Deportivo", "Diseño icónico", "Performance sport"},
	},
}

type Catalog struct {
	logger logger.Logger
}

func New(log logger.Logger) *Catalog {
	return &Catalog{logger: log.WithFields(map[string]interface{}{"component": "fallback"})}
}

// Candidates returns the pool filtered by the hard criteria in prefs. When the
// filters eliminate everything, the full pool is returned instead, so the
// fallback path never produces an empty result.
func (f *Catalog) Candidates(prefs models.Preferences) []models.Candidate {
	var filtered []models.Candidate
	for _, c := range pool {
		if matches(c, prefs) {
			filtered = append(filtered, c.Clone())
		}
	}

	if len(filtered) == 0 {
		f.logger.Debug("fallback filters excluded the whole pool, serving it unfiltered", nil)
		filtered = make([]models.Candidate, 0, len(pool))
		for _, c := range pool {
			filtered = append(filtered, c.Clone())
		}
	}

	return filtered
}

func matches(c models.Candidate, prefs models.Preferences) bool {
	if len(prefs.Brands) > 0 && !prefs.WantsBrand(c.Brand) {
		return false
	}
	if len(prefs.Types) > 0 && !prefs.WantsType(c.VehicleType) {
		return false
	}
	if prefs.Fuel != "" && !strings.EqualFold(prefs.Fuel, c.Fuel) {
		return false
	}
	if c.Price < prefs.PriceMin || c.Price > prefs.PriceMax {
		return false
	}
	return true
}
