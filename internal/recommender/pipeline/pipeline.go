// Package pipeline wires the recommendation stages into one request flow:
// normalize, build predicates, query the catalog, score, personalize,
// truncate. Store failures and empty results divert to the fallback pool;
// the only error a caller can see is a contract violation.
package pipeline

import (
	"context"
	"time"

	apperrors "car-recommender/internal/common/errors"
	"car-recommender/internal/common/logger"
	"car-recommender/internal/common/metrics"
	"car-recommender/internal/models"
	"car-recommender/internal/recommender/catalog"
	"car-recommender/internal/recommender/fallback"
	"car-recommender/internal/recommender/normalizer"
	"car-recommender/internal/recommender/personalizer"
	"car-recommender/internal/recommender/predicate"
	"car-recommender/internal/recommender/scoring"

	"github.com/google/uuid"
)

// Input is one recommendation request.
type Input struct {
	Preferences normalizer.RawPreferences `json:"preferences"`
	Gender      string                    `json:"gender,omitempty"`
	AgeRange    string                    `json:"age_range,omitempty"`
}

// Config carries the pipeline's tunables.
type Config struct {
	// MaxResults caps the final ranked list.
	MaxResults int
}

type Pipeline struct {
	config       Config
	normalizer   *normalizer.Normalizer
	builder      *predicate.Builder
	gateway      catalog.Gateway
	scorer       *scoring.Scorer
	personalizer *personalizer.Personalizer
	fallback     *fallback.Catalog
	logger       logger.Logger
}

func New(cfg Config, gateway catalog.Gateway, log logger.Logger, builder *predicate.Builder) *Pipeline {
	return &Pipeline{
		config:       cfg,
		normalizer:   normalizer.New(log),
		builder:      builder,
		gateway:      gateway,
		scorer:       scoring.New(log),
		personalizer: personalizer.New(log),
		fallback:     fallback.New(log),
		logger:       log.WithFields(map[string]interface{}{"component": "pipeline"}),
	}
}

// Recommend runs one full recommendation request and returns the ranked
// candidates, highest score first, at most MaxResults of them. Invocations
// are independent; the gateway call is the only blocking point and honors
// ctx cancellation.
func (p *Pipeline) Recommend(ctx context.Context, input *Input) ([]models.Candidate, error) {
	if input == nil {
		return nil, apperrors.NewInvalidInputError("nil pipeline input")
	}

	start := time.Now()
	defer func() {
		metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	}()

	log := p.logger.WithFields(map[string]interface{}{"request_id": uuid.New().String()})

	prefs := p.normalizer.Normalize(input.Preferences, input.Gender, input.AgeRange)
	query := p.builder.Build(prefs)

	candidates, source := p.fetchCandidates(ctx, query, prefs, log)
	metrics.RecommendationsTotal.WithLabelValues(source).Inc()

	ranked := p.scorer.Score(candidates, prefs)
	ranked = p.personalizer.Apply(ranked, prefs)

	if len(ranked) > p.config.MaxResults {
		ranked = ranked[:p.config.MaxResults]
	}
	metrics.CandidatesReturned.Observe(float64(len(ranked)))

	log.Info("recommendation completed", map[string]interface{}{
		"source":     source,
		"candidates": len(ranked),
		"age_group":  string(prefs.AgeGroup),
		"duration":   time.Since(start).String(),
	})

	return ranked, nil
}

// fetchCandidates queries the store and reports which source the candidates
// came from. A store error or an empty result both mean the fallback pool.
func (p *Pipeline) fetchCandidates(ctx context.Context, query predicate.Query, prefs models.Preferences, log logger.Logger) ([]models.Candidate, string) {
	rows, err := p.gateway.Search(ctx, query)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues(string(apperrors.GetErrorCode(err))).Inc()
		metrics.FallbackTotal.Inc()
		log.WithError(err).Warn("catalog store failed, serving fallback pool", nil)
		return p.fallback.Candidates(prefs), metrics.SourceFallback
	}
	if len(rows) == 0 {
		metrics.StoreErrorsTotal.WithLabelValues(string(apperrors.ErrCodeEmptyResult)).Inc()
		metrics.FallbackTotal.Inc()
		log.Warn("catalog returned no candidates, serving fallback pool", nil)
		return p.fallback.Candidates(prefs), metrics.SourceFallback
	}

	candidates := make([]models.Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, row.Candidate())
	}
	return candidates, metrics.SourceStore
}
