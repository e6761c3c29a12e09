package config

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Recommender RecommenderConfig `mapstructure:"recommender"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type DatabaseConfig struct {
	Neo4j Neo4jConfig `mapstructure:"neo4j"`
	Redis RedisConfig `mapstructure:"redis"`
}

// Neo4jConfig holds connection settings for the catalog graph store.
type Neo4jConfig struct {
	URI      string `mapstructure:"uri"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RecommenderConfig holds the tunables of the ranking pipeline. StoreLimit is
// the pre-ranking cap requested from the store; MaxResults is the final
// truncation applied after scoring.
type RecommenderConfig struct {
	StoreLimit   int `mapstructure:"store_limit"`
	MaxResults   int `mapstructure:"max_results"`
	QueryTimeout int `mapstructure:"query_timeout"` // milliseconds
	CacheTTL     int `mapstructure:"cache_ttl"`     // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig holds the Prometheus scrape endpoint settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}
