package models

import (
	"math"
	"strings"
)

// Gender is the demographic gender attribute used for personalization.
type Gender string

const (
	GenderFemale      Gender = "femenino"
	GenderMale        Gender = "masculino"
	GenderUnspecified Gender = ""
)

// ParseGender maps a raw gender token (Spanish or English) to a Gender.
// Unrecognized tokens map to GenderUnspecified, never an error.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "femenino", "female", "f", "mujer":
		return GenderFemale
	case "masculino", "male", "m", "hombre":
		return GenderMale
	default:
		return GenderUnspecified
	}
}

// AgeGroup is the demographic age bucket derived from a raw age-range token.
type AgeGroup string

const (
	AgeGroupYoung        AgeGroup = "young"
	AgeGroupReproductive AgeGroup = "reproductive"
	AgeGroupMature       AgeGroup = "mature"
	AgeGroupUnknown      AgeGroup = "unknown"
)

// AgeGroupFromRange maps a raw age-range token to its demographic group.
// Unrecognized tokens map to AgeGroupUnknown, never an error.
func AgeGroupFromRange(ageRange string) AgeGroup {
	switch strings.TrimSpace(ageRange) {
	case "18-25":
		return AgeGroupYoung
	case "26-35", "36-45":
		return AgeGroupReproductive
	case "46-55", "56+":
		return AgeGroupMature
	default:
		return AgeGroupUnknown
	}
}

// Preferences is the canonical, normalized criteria set for one recommendation
// request. All filter fields are already in canonical vocabulary; downstream
// stages never perform synonym resolution.
type Preferences struct {
	Brands       []string `json:"brands,omitempty"`
	PriceMin     float64  `json:"priceMin"`
	PriceMax     float64  `json:"priceMax"` // math.Inf(1) when unbounded
	Fuel         string   `json:"fuel,omitempty"`
	Types        []string `json:"types,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Gender       Gender   `json:"gender,omitempty"`
	AgeGroup     AgeGroup `json:"ageGroup,omitempty"`
}

// HasPriceCeiling reports whether the budget has a finite upper bound.
func (p Preferences) HasPriceCeiling() bool {
	return !math.IsInf(p.PriceMax, 1)
}

// WantsBrand reports whether brand is in the preferred brand set.
func (p Preferences) WantsBrand(brand string) bool {
	for _, b := range p.Brands {
		if b == brand {
			return true
		}
	}
	return false
}

// WantsType reports whether vehicleType is in the preferred type set.
func (p Preferences) WantsType(vehicleType string) bool {
	for _, t := range p.Types {
		if t == vehicleType {
			return true
		}
	}
	return false
}
