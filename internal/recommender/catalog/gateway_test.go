package catalog

import (
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"

	apperrors "car-recommender/internal/common/errors"
	"car-recommender/internal/models"
)

func TestRow_Candidate(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		expected models.Candidate
	}{
		{
			name: "fully described row",
			row: Row{
				ID: "car_1", Model: "Corolla", Year: 2024, Price: 25000,
				Features: []string{"Bluetooth"}, Brand: "Toyota",
				VehicleType: "Sedán", Fuel: "Gasolina", Transmission: "Automática",
			},
			expected: models.Candidate{
				ID: "car_1", Name: "Toyota Corolla 2024", Brand: "Toyota", Model: "Corolla",
				Year: 2024, Price: 25000, VehicleType: "Sedán", Fuel: "Gasolina",
				Transmission: "Automática", Features: []string{"Bluetooth"},
			},
		},
		{
			name: "missing brand drops it from the display name",
			row:  Row{ID: "car_2", Model: "Corolla", Year: 2024, Price: 25000},
			expected: models.Candidate{
				ID: "car_2", Name: "Corolla 2024", Brand: models.UnspecifiedBrand,
				Model: "Corolla", Year: 2024, Price: 25000,
				VehicleType:  models.UnspecifiedType,
				Fuel:         models.UnspecifiedFuel,
				Transmission: models.UnspecifiedTransmission,
				Features:     []string{},
			},
		},
		{
			name: "partially described row gets placeholders only where absent",
			row: Row{
				ID: "car_3", Model: "Leaf", Year: 2023, Price: 30000,
				Brand: "Nissan", Fuel: "Eléctrico",
			},
			expected: models.Candidate{
				ID: "car_3", Name: "Nissan Leaf 2023", Brand: "Nissan", Model: "Leaf",
				Year: 2023, Price: 30000,
				VehicleType:  models.UnspecifiedType,
				Fuel:         "Eléctrico",
				Transmission: models.UnspecifiedTransmission,
				Features:     []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.row.Candidate()
			assert.Equal(t, tt.expected, got)
			assert.Zero(t, got.Score)
			assert.Nil(t, got.DemographicBonus)
		})
	}
}

func TestRow_CandidateCopiesFeatures(t *testing.T) {
	row := Row{ID: "car_1", Model: "Corolla", Year: 2024, Features: []string{"Bluetooth"}}

	c := row.Candidate()
	c.Features[0] = "mutated"

	assert.Equal(t, "Bluetooth", row.Features[0])
}

func TestGroupCountFromRecord(t *testing.T) {
	tests := []struct {
		name     string
		record   *neo4j.Record
		expected GroupCount
	}{
		{
			name: "brand bucket",
			record: &neo4j.Record{
				Keys:   []string{"nombre", "cantidad"},
				Values: []interface{}{"Toyota", int64(10)},
			},
			expected: GroupCount{Name: "Toyota", Count: 10},
		},
		{
			name: "type bucket",
			record: &neo4j.Record{
				Keys:   []string{"nombre", "cantidad"},
				Values: []interface{}{"Sedán", int64(4)},
			},
			expected: GroupCount{Name: "Sedán", Count: 4},
		},
		{
			name: "null name yields an empty bucket",
			record: &neo4j.Record{
				Keys:   []string{"nombre", "cantidad"},
				Values: []interface{}{nil, int64(3)},
			},
			expected: GroupCount{Name: "", Count: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, groupCountFromRecord(tt.record))
		})
	}
}

func TestWrapStoreError(t *testing.T) {
	cause := errors.New("syntax error near RETURN")

	wrapped := wrapStoreError(cause)

	assert.Equal(t, apperrors.ErrCodeQueryExecutionFailed, apperrors.GetErrorCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestRoundPrice(t *testing.T) {
	assert.Equal(t, 33333.33, roundPrice(100000.0/3))
	assert.Equal(t, 25000.0, roundPrice(25000))
	assert.Equal(t, 0.01, roundPrice(0.005))
}
