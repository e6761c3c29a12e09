// Package vocab is the single source of canonical vocabulary for the
// recommendation core. Every synonym table, age-group mapping, and signal-token
// set lives here so the normalizer and personalizer cannot drift apart.
package vocab

import "strings"

// Canonical fuel types as stored in the catalog.
const (
	FuelGasoline = "Gasolina"
	FuelDiesel   = "Diésel"
	FuelElectric = "Eléctrico"
	FuelHybrid   = "Híbrido"
)

// Canonical vehicle categories as stored in the catalog.
const (
	TypeSedan       = "Sedán"
	TypeSUV         = "SUV"
	TypeHatchback   = "Hatchback"
	TypePickup      = "Pickup"
	TypeCoupe       = "Coupé"
	TypeConvertible = "Convertible"
	TypeVan         = "Van"
	TypeCrossover   = "Crossover"
)

// Canonical transmission types as stored in the catalog.
const (
	TransmissionAutomatic     = "Automática"
	TransmissionManual        = "Manual"
	TransmissionSemiAutomatic = "Semiautomática"
)

var fuelSynonyms = map[string]string{
	"gasolina":  FuelGasoline,
	"gas":       FuelGasoline,
	"diesel":    FuelDiesel,
	"electrico": FuelElectric,
	"electric":  FuelElectric,
	"hibrido":   FuelHybrid,
	"hybrid":    FuelHybrid,
}

var typeSynonyms = map[string]string{
	"sedan":       TypeSedan,
	"suv":         TypeSUV,
	"hatchback":   TypeHatchback,
	"pickup":      TypePickup,
	"coupe":       TypeCoupe,
	"convertible": TypeConvertible,
}

var transmissionSynonyms = map[string]string{
	"automatic":      TransmissionAutomatic,
	"automatica":     TransmissionAutomatic,
	"manual":         TransmissionManual,
	"semiautomatic":  TransmissionSemiAutomatic,
	"semiautomatica": TransmissionSemiAutomatic,
}

// CanonicalFuel maps a raw fuel token to its canonical form. Unmapped values
// pass through unchanged.
func CanonicalFuel(raw string) string {
	if canonical, ok := fuelSynonyms[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}

// CanonicalType maps a raw vehicle-category token to its canonical form.
// Unmapped values pass through unchanged.
func CanonicalType(raw string) string {
	if canonical, ok := typeSynonyms[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}

// CanonicalTransmission maps a raw transmission token to its canonical form.
// Unmapped values pass through unchanged.
func CanonicalTransmission(raw string) string {
	if canonical, ok := transmissionSynonyms[strings.ToLower(raw)]; ok {
		return canonical
	}
	return raw
}

// FuelTypes returns the canonical fuel vocabulary.
func FuelTypes() []string {
	return []string{FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid}
}

// VehicleTypes returns the canonical vehicle-category vocabulary.
func VehicleTypes() []string {
	return []string{
		TypeSedan, TypeSUV, TypeHatchback, TypePickup,
		TypeCoupe, TypeConvertible, TypeVan, TypeCrossover,
	}
}

// TransmissionTypes returns the canonical transmission vocabulary.
func TransmissionTypes() []string {
	return []string{TransmissionAutomatic, TransmissionManual, TransmissionSemiAutomatic}
}

// Signal-token sets for demographic personalization. Tokens are matched as
// case-insensitive substrings, so both the catalog's Spanish feature text and
// English feature text hit them.
var (
	SportTokens   = []string{"sport", "gt", "turbo", "mustang", "m3"}
	FamilyTokens  = []string{"familia", "seguridad", "espacio", "asientos", "family", "safety", "space", "seats"}
	PremiumTokens = []string{"premium", "lujo", "cuero", "luxury", "leather"}
	ComfortTokens = []string{"cuero", "premium", "lujo", "confort", "leather", "luxury", "comfort"}

	// LuxuryBrands are matched as substrings of the candidate's brand.
	LuxuryBrands = []string{"mercedes", "bmw", "audi", "lexus"}
)

// ContainsAnyToken reports whether text contains at least one of the tokens.
// Matching is case-insensitive; callers pass already-lowered text when they
// match repeatedly.
func ContainsAnyToken(text string, tokens []string) bool {
	lowered := strings.ToLower(text)
	for _, token := range tokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}
