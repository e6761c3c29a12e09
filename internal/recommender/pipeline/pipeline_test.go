package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "car-recommender/internal/common/errors"
	"car-recommender/internal/common/logger"
	"car-recommender/internal/common/metrics"
	"car-recommender/internal/recommender/catalog"
	"car-recommender/internal/recommender/normalizer"
	"car-recommender/internal/recommender/predicate"
	"car-recommender/internal/vocab"
)

type stubGateway struct {
	rows      []catalog.Row
	err       error
	lastQuery predicate.Query
}

func (s *stubGateway) Search(ctx context.Context, query predicate.Query) ([]catalog.Row, error) {
	s.lastQuery = query
	return s.rows, s.err
}

func newPipeline(t *testing.T, gateway catalog.Gateway, maxResults int) *Pipeline {
	t.Helper()
	return New(
		Config{MaxResults: maxResults},
		gateway,
		logger.NewTestLogger(t),
		predicate.New(20),
	)
}

func TestRecommend_NilInput(t *testing.T) {
	p := newPipeline(t, &stubGateway{}, 10)

	_, err := p.Recommend(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.GetErrorCode(err))
}

func TestRecommend_StoreErrorServesFallback(t *testing.T) {
	gateway := &stubGateway{err: apperrors.NewStoreUnavailableError(assert.AnError)}
	p := newPipeline(t, gateway, 10)

	input := &Input{Preferences: normalizer.RawPreferences{
		Brands: []interface{}{"Toyota"},
		Budget: "15000-30000",
	}}

	ranked, err := p.Recommend(context.Background(), input)

	require.NoError(t, err, "store failures must not surface to the caller")
	require.Len(t, ranked, 1)
	assert.Equal(t, "fallback_1", ranked[0].ID)
	assert.Equal(t, "Toyota Corolla 2024", ranked[0].Name)
	// The pool candidate still went through base scoring: price fit
	// (1 - 25000/30000)*30 = 5 plus brand 25 plus 5 features at 2 each.
	assert.Equal(t, 40.0, ranked[0].Score)
}

func TestRecommend_EmptyResultServesFallback(t *testing.T) {
	gateway := &stubGateway{rows: nil}
	p := newPipeline(t, gateway, 10)

	emptyResults := metrics.StoreErrorsTotal.WithLabelValues(string(apperrors.ErrCodeEmptyResult))
	before := testutil.ToFloat64(emptyResults)

	ranked, err := p.Recommend(context.Background(), &Input{})

	require.NoError(t, err)
	assert.Len(t, ranked, 6, "unconstrained request falls back to the whole pool")
	assert.Equal(t, before+1, testutil.ToFloat64(emptyResults))
}

func TestRecommend_StorePath(t *testing.T) {
	gateway := &stubGateway{rows: []catalog.Row{
		{ID: "car_1", Model: "Corolla", Year: 2024, Price: 25000, Brand: "Toyota",
			VehicleType: vocab.TypeSedan, Fuel: vocab.FuelGasoline, Transmission: vocab.TransmissionAutomatic},
		{ID: "car_2", Model: "Civic", Year: 2024, Price: 27000, Brand: "Honda",
			VehicleType: vocab.TypeSedan, Fuel: vocab.FuelGasoline, Transmission: vocab.TransmissionManual},
	}}
	p := newPipeline(t, gateway, 10)

	input := &Input{Preferences: normalizer.RawPreferences{
		Brands: "Toyota",
		Budget: "30000",
	}}

	ranked, err := p.Recommend(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "car_1", ranked[0].ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
	assert.Contains(t, gateway.lastQuery.Params, "brands")
}

func TestRecommend_TruncatesAfterRanking(t *testing.T) {
	var rows []catalog.Row
	for i := 0; i < 15; i++ {
		rows = append(rows, catalog.Row{
			ID:    fmt.Sprintf("car_%d", i),
			Model: "Corolla", Year: 2024,
			Price: float64(20000 + i*1000),
			Brand: "Toyota", VehicleType: vocab.TypeSedan,
		})
	}
	p := newPipeline(t, &stubGateway{rows: rows}, 10)

	input := &Input{Preferences: normalizer.RawPreferences{Budget: "50000"}}

	ranked, err := p.Recommend(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, ranked, 10)
	// Cheaper cars fit a capped budget better, so no expensive candidate
	// may displace one after truncation.
	assert.Equal(t, "car_0", ranked[0].ID)
	assert.Equal(t, "car_9", ranked[9].ID)
}

func TestRecommend_DemographicEndToEnd(t *testing.T) {
	rows := []catalog.Row{
		{ID: "sedan", Model: "Corolla", Year: 2024, Price: 25000, Brand: "Toyota", VehicleType: vocab.TypeSedan},
		{ID: "suv", Model: "RAV4", Year: 2024, Price: 25000, Brand: "Toyota", VehicleType: vocab.TypeSUV},
	}
	p := newPipeline(t, &stubGateway{rows: rows}, 10)

	input := &Input{
		Preferences: normalizer.RawPreferences{Brands: "Toyota"},
		Gender:      "femenino",
		AgeRange:    "26-35",
	}

	ranked, err := p.Recommend(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	// Same base score for both, so the +15 family SUV bonus decides.
	assert.Equal(t, "suv", ranked[0].ID)
	require.NotNil(t, ranked[0].DemographicBonus)
	assert.Equal(t, 15.0, *ranked[0].DemographicBonus)
	assert.Nil(t, ranked[1].DemographicBonus)
}
