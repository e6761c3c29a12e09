// Package normalizer canonicalizes raw, loosely-typed preference input into a
// strict models.Preferences. It never fails: unparsable or missing fields
// degrade to "no constraint" so a malformed filter cannot block a ranked
// response.
package normalizer

import (
	"math"
	"strconv"
	"strings"

	"car-recommender/internal/common/logger"
	"car-recommender/internal/models"
	"car-recommender/internal/vocab"
)

// RawPreferences is the loosely-typed inbound shape. Several fields accept a
// single value, a list, or (for brands) a mapping of groups, because the
// upstream clients send all three.
type RawPreferences struct {
	Brands       interface{} `json:"brands"`
	Budget       interface{} `json:"budget"`
	Fuel         interface{} `json:"fuel"`
	Types        interface{} `json:"types"`
	Transmission interface{} `json:"transmission"`
}

type Normalizer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Normalizer {
	return &Normalizer{
		logger: log.WithFields(map[string]interface{}{"component": "normalizer"}),
	}
}

// Normalize produces a fully-populated Preferences from raw input. Brand
// strings pass through case-sensitively; fuel, type, and transmission values
// go through the canonical synonym tables. Inverted budget ranges pass
// through untouched and simply match nothing downstream.
func (n *Normalizer) Normalize(raw RawPreferences, gender, ageRange string) models.Preferences {
	priceMin, priceMax := n.parseBudget(raw.Budget)

	prefs := models.Preferences{
		Brands:   parseStringSet(raw.Brands),
		PriceMin: priceMin,
		PriceMax: priceMax,
		Gender:   models.ParseGender(gender),
		AgeGroup: models.AgeGroupFromRange(ageRange),
	}

	if fuel := collapseToScalar(raw.Fuel); fuel != "" {
		prefs.Fuel = vocab.CanonicalFuel(fuel)
	}

	for _, t := range parseStringSet(raw.Types) {
		prefs.Types = append(prefs.Types, vocab.CanonicalType(t))
	}

	if transmission := collapseToScalar(raw.Transmission); transmission != "" {
		prefs.Transmission = vocab.CanonicalTransmission(transmission)
	}

	n.logger.Debug("preferences normalized", map[string]interface{}{
		"brands":       prefs.Brands,
		"priceMin":     prefs.PriceMin,
		"priceMax":     prefs.PriceMax,
		"fuel":         prefs.Fuel,
		"types":        prefs.Types,
		"transmission": prefs.Transmission,
		"ageGroup":     prefs.AgeGroup,
	})

	return prefs
}

// parseBudget turns a budget expression into a numeric range. Accepted forms:
// "100000+" -> [100000, +Inf); "min-max" -> [min, max]; a bare number ->
// [0, number]. Anything unparsable falls open to [0, +Inf).
func (n *Normalizer) parseBudget(raw interface{}) (float64, float64) {
	unbounded := math.Inf(1)

	switch v := raw.(type) {
	case nil:
		return 0, unbounded

	case float64:
		return 0, v

	case int:
		return 0, float64(v)

	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, unbounded
		}

		if strings.HasSuffix(s, "+") {
			if min, err := strconv.Atoi(strings.TrimSuffix(s, "+")); err == nil {
				return float64(min), unbounded
			}
			n.logger.Warn("unparsable budget, falling open", map[string]interface{}{"budget": s})
			return 0, unbounded
		}

		if strings.Contains(s, "-") {
			parts := strings.SplitN(s, "-", 2)
			min, errMin := strconv.Atoi(strings.TrimSpace(parts[0]))
			max, errMax := strconv.Atoi(strings.TrimSpace(parts[1]))
			if errMin == nil && errMax == nil {
				return float64(min), float64(max)
			}
			n.logger.Warn("unparsable budget, falling open", map[string]interface{}{"budget": s})
			return 0, unbounded
		}

		if max, err := strconv.Atoi(s); err == nil {
			return 0, float64(max)
		}
		n.logger.Warn("unparsable budget, falling open", map[string]interface{}{"budget": s})
		return 0, unbounded

	default:
		n.logger.Warn("unparsable budget, falling open", map[string]interface{}{"budget": raw})
		return 0, unbounded
	}
}

// parseStringSet accepts a scalar, a sequence, or a mapping of groups and
// always returns a deduplicated set. Mapping keys are ignored; values flow
// through the same scalar/sequence handling.
func parseStringSet(raw interface{}) []string {
	var result []string
	seen := make(map[string]bool)

	add := func(s string) {
		trimmed := strings.TrimSpace(s)
		if trimmed != "" && !seen[trimmed] {
			result = append(result, trimmed)
			seen[trimmed] = true
		}
	}

	var collect func(value interface{})
	collect = func(value interface{}) {
		switch v := value.(type) {
		case string:
			add(v)
		case []string:
			for _, s := range v {
				add(s)
			}
		case []interface{}:
			for _, item := range v {
				collect(item)
			}
		case map[string]interface{}:
			for _, item := range v {
				collect(item)
			}
		}
	}

	collect(raw)
	return result
}

// collapseToScalar reduces a possibly-list value to its first element, or
// empty when absent.
func collapseToScalar(raw interface{}) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case []string:
		if len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
