// Package predicate translates normalized preferences into a Cypher query
// plus bound parameters for the catalog graph store. The builder is pure:
// identical preferences always yield an identical query, and no synonym
// resolution happens here — inputs must already be canonical.
package predicate

import (
	"strings"

	"car-recommender/internal/models"
)

// Query is the predicate set handed to the catalog gateway.
type Query struct {
	Cypher string
	Params map[string]interface{}
}

type Builder struct {
	limit int
}

// New returns a builder that caps store results at limit rows. This is the
// pre-ranking cap, distinct from the final truncation applied after scoring.
func New(limit int) *Builder {
	return &Builder{limit: limit}
}

// Build assembles the traversal. The price predicate is always present; each
// absent preference omits both its WHERE condition and its required
// relationship MATCH, so candidates lacking that relationship stay matchable.
// Descriptive attributes are always fetched through OPTIONAL MATCH,
// independent of filtering.
func (b *Builder) Build(prefs models.Preferences) Query {
	parts := []string{"MATCH (a:Auto)"}
	conditions := []string{"a.precio >= $min_price AND a.precio <= $max_price"}
	params := map[string]interface{}{
		"min_price": prefs.PriceMin,
		"max_price": prefs.PriceMax,
		"limit":     b.limit,
	}

	if len(prefs.Brands) > 0 {
		parts = append(parts, "MATCH (a)-[:ES_MARCA]->(m:Marca)")
		conditions = append(conditions, "m.nombre IN $brands")
		params["brands"] = prefs.Brands
	}

	if prefs.Fuel != "" {
		parts = append(parts, "MATCH (a)-[:USA_COMBUSTIBLE]->(c:Combustible)")
		conditions = append(conditions, "c.tipo = $fuel")
		params["fuel"] = prefs.Fuel
	}

	if len(prefs.Types) > 0 {
		parts = append(parts, "MATCH (a)-[:ES_TIPO]->(t:Tipo)")
		conditions = append(conditions, "t.categoria IN $types")
		params["types"] = prefs.Types
	}

	if prefs.Transmission != "" {
		parts = append(parts, "MATCH (a)-[:TIENE_TRANSMISION]->(tr:Transmision)")
		conditions = append(conditions, "tr.tipo = $transmission")
		params["transmission"] = prefs.Transmission
	}

	parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))

	parts = append(parts, `
		OPTIONAL MATCH (a)-[:ES_MARCA]->(m2:Marca)
		OPTIONAL MATCH (a)-[:ES_TIPO]->(t2:Tipo)
		OPTIONAL MATCH (a)-[:USA_COMBUSTIBLE]->(c2:Combustible)
		OPTIONAL MATCH (a)-[:TIENE_TRANSMISION]->(tr2:Transmision)
		RETURN a.id AS id, a.modelo AS modelo, a.año AS año, a.precio AS precio,
		       a.caracteristicas AS caracteristicas,
		       m2.nombre AS marca, t2.categoria AS tipo,
		       c2.tipo AS combustible, tr2.tipo AS transmision
		ORDER BY a.precio ASC
		LIMIT $limit`)

	return Query{
		Cypher: strings.Join(parts, " "),
		Params: params,
	}
}
