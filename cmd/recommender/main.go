// cmd/recommender/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"car-recommender/internal/common/config"
	"car-recommender/internal/common/database"
	"car-recommender/internal/common/logger"
	"car-recommender/internal/common/observability"
	"car-recommender/internal/recommender/catalog"
	"car-recommender/internal/recommender/pipeline"
	"car-recommender/internal/recommender/predicate"
	"car-recommender/internal/vocab"
)

func main() {
	inputPath := flag.String("input", "", "path to a JSON request file (default: stdin)")
	showStats := flag.Bool("stats", false, "print catalog statistics instead of recommending")
	showVocab := flag.Bool("vocab", false, "print the accepted canonical filter values and exit")
	flag.Parse()

	if *showVocab {
		writeJSON(map[string][]string{
			"fuels":         vocab.FuelTypes(),
			"types":         vocab.VehicleTypes(),
			"transmissions": vocab.TransmissionTypes(),
		})
		return
	}

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}
	log = logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	obs := observability.New("recommender")
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				log.Warn("metrics endpoint stopped", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	ctx := context.Background()

	// The store connection is established eagerly so a misconfigured URI
	// fails at startup, not on the first request.
	neo4jClient, err := database.NewNeo4j(ctx, cfg.Database.Neo4j)
	if err != nil {
		zapLog.Fatal("neo4j connection failed", zap.Error(err))
	}
	defer neo4jClient.Close(ctx)

	var gateway catalog.Gateway = catalog.NewNeo4jGateway(neo4jClient, log)

	if cfg.Database.Redis.Enabled {
		redisClient, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Fatal("redis client init failed", zap.Error(err))
		}
		defer redisClient.Close()

		if err := redisClient.Ping(ctx); err != nil {
			log.Warn("redis unreachable, query cache disabled", map[string]interface{}{"error": err.Error()})
		} else {
			ttl := time.Duration(cfg.Recommender.CacheTTL) * time.Second
			gateway = catalog.NewCachedGateway(gateway, redisClient, ttl, log)
		}
	}

	if *showStats {
		runStats(ctx, neo4jClient, log)
		return
	}

	input, err := readInput(*inputPath)
	if err != nil {
		zapLog.Fatal("request read failed", zap.Error(err))
	}

	p := pipeline.New(
		pipeline.Config{MaxResults: cfg.Recommender.MaxResults},
		gateway,
		log,
		predicate.New(cfg.Recommender.StoreLimit),
	)

	queryCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Recommender.QueryTimeout))
	defer cancel()

	start := time.Now()
	ranked, err := p.Recommend(queryCtx, input)
	if err != nil {
		zapLog.Fatal("recommendation failed", zap.Error(err))
	}
	obs.RecordRequest(ctx, "cli")
	obs.RecordDuration(ctx, time.Since(start), "cli")

	writeJSON(ranked)
}

func runStats(ctx context.Context, client *database.Neo4jClient, log logger.Logger) {
	stats, err := catalog.NewNeo4jGateway(client, log).Stats(ctx)
	if err != nil {
		log.Error("catalog stats failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	writeJSON(stats)
}

func readInput(path string) (*pipeline.Input, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}

	var input pipeline.Input
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	return &input, nil
}

func writeJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
