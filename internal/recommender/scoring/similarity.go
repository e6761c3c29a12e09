// Package scoring assigns similarity scores to candidates and orders them by
// score. Scoring is pure: it reads preferences and candidate attributes and
// returns freshly built candidates, leaving its inputs untouched.
package scoring

import (
	"math"
	"sort"

	"car-recommender/internal/common/logger"
	"car-recommender/internal/models"
)

// Point weights per matched preference dimension.
const (
	priceWeight        = 30.0
	brandWeight        = 25.0
	typeWeight         = 20.0
	fuelWeight         = 15.0
	transmissionWeight = 10.0
	featureWeight      = 2.0
)

type Scorer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Scorer {
	return &Scorer{logger: log.WithFields(map[string]interface{}{"component": "scoring"})}
}

// Score computes a similarity score for every candidate and returns them in
// descending score order. Ties keep the incoming relative order, so the
// store's price-ascending ordering survives among equal scores.
func (s *Scorer) Score(candidates []models.Candidate, prefs models.Preferences) []models.Candidate {
	scored := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		out := c.Clone()
		out.Score = score(c, prefs)
		scored = append(scored, out)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	s.logger.Debug("candidates scored", map[string]interface{}{"count": len(scored)})
	return scored
}

func score(c models.Candidate, prefs models.Preferences) float64 {
	var points float64

	// Price fit needs a finite ceiling: an unbounded budget gives no signal
	// about how well a price fits it. A price above the ceiling goes
	// negative rather than clamping, so overshooting is penalized.
	if prefs.HasPriceCeiling() && prefs.PriceMax > 0 {
		points += (1 - c.Price/prefs.PriceMax) * priceWeight
	}

	if prefs.WantsBrand(c.Brand) {
		points += brandWeight
	}
	if prefs.WantsType(c.VehicleType) {
		points += typeWeight
	}
	if prefs.Fuel != "" && prefs.Fuel == c.Fuel {
		points += fuelWeight
	}
	if prefs.Transmission != "" && prefs.Transmission == c.Transmission {
		points += transmissionWeight
	}
	points += featureWeight * float64(len(c.Features))

	return math.Round(points*100) / 100
}
