package models

// Placeholder values substituted when the store returned no relationship for a
// descriptive attribute. Kept identical to the catalog's own wording.
const (
	UnspecifiedBrand        = "Marca no especificada"
	UnspecifiedType         = "Tipo no especificado"
	UnspecifiedFuel         = "Combustible no especificado"
	UnspecifiedTransmission = "Transmisión no especificada"
)

// Candidate is one vehicle under consideration. A Candidate is created fresh
// per request, scored, optionally personalized, and never outlives one
// pipeline invocation.
type Candidate struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Price        float64  `json:"price"`
	VehicleType  string   `json:"type"`
	Fuel         string   `json:"fuel"`
	Transmission string   `json:"transmission"`
	Features     []string `json:"features"`
	Score        float64  `json:"similarity_score"`

	// DemographicBonus is set only when personalization applied a nonzero
	// bonus; nil means "not personalized", which is distinct from zero.
	DemographicBonus *float64 `json:"demographic_bonus,omitempty"`
}

// Clone returns an independent copy of the candidate, so each scoring stage
// can produce fresh values instead of mutating shared state.
func (c Candidate) Clone() Candidate {
	out := c
	out.Features = append([]string(nil), c.Features...)
	if c.DemographicBonus != nil {
		bonus := *c.DemographicBonus
		out.DemographicBonus = &bonus
	}
	return out
}
