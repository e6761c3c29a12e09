// Package personalizer re-ranks scored candidates with demographic bonuses.
// Bonuses are additive on top of the similarity score; the stage is a no-op
// unless both gender and age group are known for the request.
package personalizer

import (
	"fmt"
	"sort"
	"strings"

	"car-recommender/internal/common/logger"
	"car-recommender/internal/models"
	"car-recommender/internal/vocab"
)

const (
	sportyBonus        = 5.0
	sportyBonusMale    = 8.0
	suvFamilyBonus     = 15.0
	sedanFamilyBonus   = 10.0
	luxuryBrandBonus   = 12.0
	premiumTrimBonus   = 8.0
	matureComfortBonus = 3.0
)

type Personalizer struct {
	logger logger.Logger
}

func New(log logger.Logger) *Personalizer {
	return &Personalizer{logger: log.WithFields(map[string]interface{}{"component": "personalizer"})}
}

// Apply adds demographic bonuses to the candidates and re-sorts them by the
// adjusted score. Candidates are returned as fresh copies; when no demographic
// profile is available the input order and scores pass through unchanged.
func (p *Personalizer) Apply(candidates []models.Candidate, prefs models.Preferences) []models.Candidate {
	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Clone())
	}

	if prefs.Gender == models.GenderUnspecified || prefs.AgeGroup == models.AgeGroupUnknown || prefs.AgeGroup == "" {
		return out
	}

	personalized := 0
	for i := range out {
		bonus := demographicBonus(out[i], prefs.Gender, prefs.AgeGroup)
		if bonus != 0 {
			out[i].Score += bonus
			b := bonus
			out[i].DemographicBonus = &b
			personalized++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	p.logger.Debug("demographic ranking applied", map[string]interface{}{
		"gender":       string(prefs.Gender),
		"age_group":    string(prefs.AgeGroup),
		"personalized": personalized,
	})
	return out
}

func demographicBonus(c models.Candidate, gender models.Gender, age models.AgeGroup) float64 {
	text := searchText(c)
	brand := strings.ToLower(c.Brand)

	var bonus float64

	switch {
	case gender == models.GenderFemale && age == models.AgeGroupYoung:
		if isSporty(c, text) {
			bonus += sportyBonus
		}
	case gender == models.GenderFemale && age == models.AgeGroupReproductive:
		// SUV wins outright; the sedan bonus additionally needs a family
		// signal in the vehicle's text.
		if c.VehicleType == vocab.TypeSUV {
			bonus += suvFamilyBonus
		} else if c.VehicleType == vocab.TypeSedan && vocab.ContainsAnyToken(text, vocab.FamilyTokens) {
			bonus += sedanFamilyBonus
		}
	case gender == models.GenderMale && age == models.AgeGroupYoung:
		if isSporty(c, text) {
			bonus += sportyBonusMale
		}
	}

	if age == models.AgeGroupMature {
		if isLuxuryBrand(brand) {
			bonus += luxuryBrandBonus
		}
		if vocab.ContainsAnyToken(text, vocab.PremiumTokens) {
			bonus += premiumTrimBonus
		}
		if vocab.ContainsAnyToken(text, vocab.ComfortTokens) {
			bonus += matureComfortBonus
		}
	}

	return bonus
}

func isSporty(c models.Candidate, text string) bool {
	return c.VehicleType == vocab.TypeCoupe ||
		c.VehicleType == vocab.TypeConvertible ||
		vocab.ContainsAnyToken(text, vocab.SportTokens)
}

func isLuxuryBrand(lowerBrand string) bool {
	for _, b := range vocab.LuxuryBrands {
		if strings.Contains(lowerBrand, b) {
			return true
		}
	}
	return false
}

// searchText flattens the candidate's descriptive attributes into one
// lowercase haystack for token matching.
func searchText(c models.Candidate) string {
	return strings.ToLower(fmt.Sprintf("%s %s %s %s",
		c.Name, c.Brand, c.VehicleType, strings.Join(c.Features, " ")))
}
