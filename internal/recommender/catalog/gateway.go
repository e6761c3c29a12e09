// Package catalog is the boundary to the external graph store. The gateway
// executes a predicate set and returns raw rows, or fails; it never
// substitutes data — the fallback decision belongs to the pipeline.
package catalog

import (
	"context"
	"fmt"
	"math"

	"car-recommender/internal/common/database"
	apperrors "car-recommender/internal/common/errors"
	"car-recommender/internal/common/logger"
	"car-recommender/internal/models"
	"car-recommender/internal/recommender/predicate"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Row is one raw candidate row as returned by the store. Relationship-derived
// fields (Brand, VehicleType, Fuel, Transmission) are empty when the store
// had no such relationship for the vehicle.
type Row struct {
	ID           string
	Model        string
	Year         int
	Price        float64
	Features     []string
	Brand        string
	VehicleType  string
	Fuel         string
	Transmission string
}

// Candidate maps the raw row to a fresh Candidate, substituting placeholder
// text for absent descriptive attributes.
func (r Row) Candidate() models.Candidate {
	c := models.Candidate{
		ID:           r.ID,
		Model:        r.Model,
		Year:         r.Year,
		Price:        r.Price,
		Features:     append([]string{}, r.Features...),
		Brand:        r.Brand,
		VehicleType:  r.VehicleType,
		Fuel:         r.Fuel,
		Transmission: r.Transmission,
	}

	if c.Brand == "" {
		c.Name = fmt.Sprintf("%s %d", r.Model, r.Year)
		c.Brand = models.UnspecifiedBrand
	} else {
		c.Name = fmt.Sprintf("%s %s %d", r.Brand, r.Model, r.Year)
	}
	if c.VehicleType == "" {
		c.VehicleType = models.UnspecifiedType
	}
	if c.Fuel == "" {
		c.Fuel = models.UnspecifiedFuel
	}
	if c.Transmission == "" {
		c.Transmission = models.UnspecifiedTransmission
	}

	return c
}

// Gateway executes a predicate set against the catalog store.
type Gateway interface {
	Search(ctx context.Context, query predicate.Query) ([]Row, error)
}

// Neo4jGateway is the production Gateway over the Neo4j driver. It performs a
// single read round trip per Search, with no internal retry; the caller owns
// the deadline through ctx.
type Neo4jGateway struct {
	client *database.Neo4jClient
	logger logger.Logger
}

func NewNeo4jGateway(client *database.Neo4jClient, log logger.Logger) *Neo4jGateway {
	return &Neo4jGateway{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "catalog"}),
	}
}

func (g *Neo4jGateway) Search(ctx context.Context, query predicate.Query) ([]Row, error) {
	session := g.client.ReadSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, query.Cypher, query.Params)
	if err != nil {
		g.logger.Error("catalog query failed", map[string]interface{}{"error": err})
		return nil, wrapStoreError(err)
	}

	var rows []Row
	for result.Next(ctx) {
		record := result.Record()
		rows = append(rows, Row{
			ID:           getString(record, "id"),
			Model:        getString(record, "modelo"),
			Year:         getInt(record, "año"),
			Price:        getFloat(record, "precio"),
			Features:     getStringSlice(record, "caracteristicas"),
			Brand:        getString(record, "marca"),
			VehicleType:  getString(record, "tipo"),
			Fuel:         getString(record, "combustible"),
			Transmission: getString(record, "transmision"),
		})
	}
	if err := result.Err(); err != nil {
		g.logger.Error("catalog result stream failed", map[string]interface{}{"error": err})
		return nil, wrapStoreError(err)
	}

	g.logger.Debug("catalog query executed", map[string]interface{}{"rows": len(rows)})
	return rows, nil
}

// wrapStoreError classifies a driver failure: a connectivity problem means
// the store itself is unreachable, anything else failed while executing the
// query.
func wrapStoreError(err error) error {
	if neo4j.IsConnectivityError(err) {
		return apperrors.NewStoreUnavailableError(err)
	}
	return apperrors.NewQueryExecutionError(err)
}

// Stats summarizes the catalog inventory.
type Stats struct {
	TotalCars    int64        `json:"total_cars"`
	MinPrice     float64      `json:"min_price"`
	MaxPrice     float64      `json:"max_price"`
	AveragePrice float64      `json:"average_price"`
	CarsByBrand  []GroupCount `json:"cars_by_brand"`
	CarsByType   []GroupCount `json:"cars_by_type"`
}

// GroupCount is one inventory bucket, e.g. vehicles per brand.
type GroupCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

const (
	priceStatsQuery = `
		MATCH (a:Auto)
		RETURN count(a) AS total,
		       min(a.precio) AS precio_min, max(a.precio) AS precio_max,
		       avg(a.precio) AS precio_promedio`

	brandCountQuery = `
		MATCH (a:Auto)-[:ES_MARCA]->(m:Marca)
		RETURN m.nombre AS nombre, count(a) AS cantidad
		ORDER BY cantidad DESC`

	typeCountQuery = `
		MATCH (a:Auto)-[:ES_TIPO]->(t:Tipo)
		RETURN t.categoria AS nombre, count(a) AS cantidad
		ORDER BY cantidad DESC`
)

// Stats reports inventory counts, the catalog price range, and the vehicle
// counts per brand and per category, most stocked first.
func (g *Neo4jGateway) Stats(ctx context.Context) (*Stats, error) {
	session := g.client.ReadSession(ctx)
	defer session.Close(ctx)

	stats := &Stats{}

	result, err := session.Run(ctx, priceStatsQuery, nil)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if result.Next(ctx) {
		record := result.Record()
		stats.TotalCars = int64(getInt(record, "total"))
		stats.MinPrice = getFloat(record, "precio_min")
		stats.MaxPrice = getFloat(record, "precio_max")
		stats.AveragePrice = roundPrice(getFloat(record, "precio_promedio"))
	}
	if err := result.Err(); err != nil {
		return nil, wrapStoreError(err)
	}

	if stats.CarsByBrand, err = runGroupCounts(ctx, session, brandCountQuery); err != nil {
		return nil, err
	}
	if stats.CarsByType, err = runGroupCounts(ctx, session, typeCountQuery); err != nil {
		return nil, err
	}

	return stats, nil
}

func runGroupCounts(ctx context.Context, session neo4j.SessionWithContext, query string) ([]GroupCount, error) {
	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	var counts []GroupCount
	for result.Next(ctx) {
		if c := groupCountFromRecord(result.Record()); c.Name != "" {
			counts = append(counts, c)
		}
	}
	if err := result.Err(); err != nil {
		return nil, wrapStoreError(err)
	}
	return counts, nil
}

func groupCountFromRecord(record *neo4j.Record) GroupCount {
	return GroupCount{
		Name:  getString(record, "nombre"),
		Count: int64(getInt(record, "cantidad")),
	}
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

func getString(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getInt(record *neo4j.Record, key string) int {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func getFloat(record *neo4j.Record, key string) float64 {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0.0
	}
	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0.0
}

func getStringSlice(record *neo4j.Record, key string) []string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return []string{}
	}
	if slice, ok := val.([]interface{}); ok {
		result := make([]string, 0, len(slice))
		for _, v := range slice {
			if str, ok := v.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}
	return []string{}
}
