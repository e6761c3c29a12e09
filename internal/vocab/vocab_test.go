package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalFuel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "english synonym", input: "electric", expected: FuelElectric},
		{name: "accentless spanish", input: "hibrido", expected: FuelHybrid},
		{name: "uppercase synonym", input: "GASOLINA", expected: FuelGasoline},
		{name: "already canonical accented value passes through", input: "Diésel", expected: "Diésel"},
		{name: "unknown passes through", input: "Hydrogen", expected: "Hydrogen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalFuel(tt.input))
		})
	}
}

func TestCanonicalType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "accentless sedan", input: "sedan", expected: TypeSedan},
		{name: "lowercase suv", input: "suv", expected: TypeSUV},
		{name: "coupe without accent", input: "coupe", expected: TypeCoupe},
		{name: "unknown category passes through", input: "Limusina", expected: "Limusina"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalType(tt.input))
		})
	}
}

func TestCanonicalTransmission(t *testing.T) {
	assert.Equal(t, TransmissionAutomatic, CanonicalTransmission("automatic"))
	assert.Equal(t, TransmissionSemiAutomatic, CanonicalTransmission("semiautomatica"))
	assert.Equal(t, "CVT", CanonicalTransmission("CVT"))
}

func TestContainsAnyToken(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		tokens   []string
		expected bool
	}{
		{name: "substring hit", text: "Asientos sport premium", tokens: SportTokens, expected: true},
		{name: "case insensitive", text: "MOTOR TURBO", tokens: SportTokens, expected: true},
		{name: "spanish family token", text: "Espacio familiar amplio", tokens: FamilyTokens, expected: true},
		{name: "no hit", text: "Radio AM/FM", tokens: PremiumTokens, expected: false},
		{name: "empty text", text: "", tokens: ComfortTokens, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsAnyToken(tt.text, tt.tokens))
		})
	}
}

func TestVocabularyListings(t *testing.T) {
	assert.Len(t, FuelTypes(), 4)
	assert.Len(t, VehicleTypes(), 8)
	assert.Len(t, TransmissionTypes(), 3)
	assert.Contains(t, VehicleTypes(), TypeCrossover)
}
