package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like DATABASE_NEO4J_URI
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored when not present.
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the working directory or any ancestor that
// contains go.mod, so tests running from package directories pick it up too.
func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string config values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig fills credentials from well-known env vars when the
// config files left them empty.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Database.Neo4j.URI == "" {
		if val := os.Getenv("NEO4J_URI"); val != "" {
			cfg.Database.Neo4j.URI = val
		}
	}
	if cfg.Database.Neo4j.User == "" {
		if val := os.Getenv("NEO4J_USER"); val != "" {
			cfg.Database.Neo4j.User = val
		}
	}
	if cfg.Database.Neo4j.Password == "" {
		if val := os.Getenv("NEO4J_PASSWORD"); val != "" {
			cfg.Database.Neo4j.Password = val
		}
	}
	if cfg.Database.Redis.Address == "" {
		if val := os.Getenv("REDIS_ADDRESS"); val != "" {
			cfg.Database.Redis.Address = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "car-recommender"
	}

	if cfg.Database.Neo4j.URI == "" {
		cfg.Database.Neo4j.URI = "bolt://localhost:7687"
	}
	if cfg.Database.Neo4j.User == "" {
		cfg.Database.Neo4j.User = "neo4j"
	}

	// Pipeline defaults: 20 rows requested from the store, 10 returned after
	// ranking.
	if cfg.Recommender.StoreLimit == 0 {
		cfg.Recommender.StoreLimit = 20
	}
	if cfg.Recommender.MaxResults == 0 {
		cfg.Recommender.MaxResults = 10
	}
	if cfg.Recommender.QueryTimeout == 0 {
		cfg.Recommender.QueryTimeout = 10000
	}
	if cfg.Recommender.CacheTTL == 0 {
		cfg.Recommender.CacheTTL = 60
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9102"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Database.Neo4j.URI == "" {
		return fmt.Errorf("database.neo4j.uri is required")
	}
	if cfg.Database.Neo4j.User == "" {
		return fmt.Errorf("database.neo4j.user is required")
	}

	if cfg.Database.Redis.Enabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when redis is enabled")
	}

	if cfg.Recommender.StoreLimit < cfg.Recommender.MaxResults {
		return fmt.Errorf("recommender.store_limit must be >= recommender.max_results")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
