package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		input    string
		expected Gender
	}{
		{input: "femenino", expected: GenderFemale},
		{input: "Female", expected: GenderFemale},
		{input: "MASCULINO", expected: GenderMale},
		{input: " male ", expected: GenderMale},
		{input: "otro", expected: GenderUnspecified},
		{input: "", expected: GenderUnspecified},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseGender(tt.input), tt.input)
	}
}

func TestAgeGroupFromRange(t *testing.T) {
	tests := []struct {
		input    string
		expected AgeGroup
	}{
		{input: "18-25", expected: AgeGroupYoung},
		{input: "26-35", expected: AgeGroupReproductive},
		{input: "36-45", expected: AgeGroupReproductive},
		{input: "46-55", expected: AgeGroupMature},
		{input: "56+", expected: AgeGroupMature},
		{input: "12-17", expected: AgeGroupUnknown},
		{input: "", expected: AgeGroupUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AgeGroupFromRange(tt.input), tt.input)
	}
}

func TestPreferences_HasPriceCeiling(t *testing.T) {
	assert.True(t, Preferences{PriceMax: 30000}.HasPriceCeiling())
	assert.False(t, Preferences{PriceMax: math.Inf(1)}.HasPriceCeiling())
}

func TestCandidate_Clone(t *testing.T) {
	bonus := 15.0
	original := Candidate{
		ID:               "car_1",
		Features:         []string{"Bluetooth"},
		DemographicBonus: &bonus,
	}

	clone := original.Clone()
	clone.Features[0] = "mutated"
	*clone.DemographicBonus = 99

	assert.Equal(t, "Bluetooth", original.Features[0])
	assert.Equal(t, 15.0, *original.DemographicBonus)
}
