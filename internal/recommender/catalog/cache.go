package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"car-recommender/internal/common/database"
	"car-recommender/internal/common/logger"
	"car-recommender/internal/recommender/predicate"

	"github.com/redis/go-redis/v9"
)

// CachedGateway is a read-through cache in front of another Gateway. Only raw
// catalog rows are cached, keyed by the query fingerprint; a cache failure on
// either read or write degrades to the inner gateway, never to an error.
type CachedGateway struct {
	inner  Gateway
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedGateway(inner Gateway, redisClient *database.RedisClient, ttl time.Duration, log logger.Logger) *CachedGateway {
	return &CachedGateway{
		inner:  inner,
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "catalog_cache"}),
	}
}

func (g *CachedGateway) Search(ctx context.Context, query predicate.Query) ([]Row, error) {
	key := cacheKey(query)

	cached, err := g.redis.Get(ctx, key)
	if err == nil {
		var rows []Row
		if err := json.Unmarshal([]byte(cached), &rows); err == nil {
			g.logger.Debug("catalog cache hit", map[string]interface{}{"key": key, "rows": len(rows)})
			return rows, nil
		}
		g.logger.Warn("discarding undecodable cache entry", map[string]interface{}{"key": key})
	} else if err != redis.Nil {
		g.logger.Warn("catalog cache read failed", map[string]interface{}{"error": err.Error()})
	}

	rows, err := g.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rows); err == nil {
		if err := g.redis.Set(ctx, key, payload, g.ttl); err != nil {
			g.logger.Warn("catalog cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return rows, nil
}

// cacheKey fingerprints the query text plus its parameters in a stable key
// order, so equal queries share an entry regardless of map iteration order.
func cacheKey(query predicate.Query) string {
	keys := make([]string, 0, len(query.Params))
	for k := range query.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	h.Write([]byte(query.Cypher))
	for _, k := range keys {
		fmt.Fprintf(h, "|%s=%v", k, query.Params[k])
	}
	return fmt.Sprintf("catalog:search:%x", h.Sum(nil)[:16])
}
