package config

import (
	"fmt"
	"strings"

	"github.com/2beens/barbelltracker/internal/progression"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis, backs the rate limiter
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	WriteRateLimitAllowedPerMin int      `toml:"write_rate_limit_allowed_per_min"`
	AllowedOrigins              []string `toml:"allowed_origins"`

	SnapshotCacheSizeMB     int `toml:"snapshot_cache_size_mb"`
	SnapshotCacheTTLSeconds int `toml:"snapshot_cache_ttl_seconds"`

	// Program holds the progression settings. Unset scalar keys and untouched lifts
	// keep their defaults, but a [program.lifts.X] table replaces that lift's
	// settings as a whole and must set every field.
	Program progression.Settings `toml:"program"`
}

type Toml struct {
	Development Config `toml:"development"`
	Production  Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return &t.Development, nil
	case "prod", "production":
		return &t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Default() Config {
	return Config{
		Host:                        "localhost",
		Port:                        9000,
		Environment:                 "development",
		LogLevel:                    "debug",
		LogToStdout:                 true,
		PostgresHost:                "localhost",
		PostgresPort:                "5432",
		PostgresDBName:              "barbell_tracker",
		RedisHost:                   "localhost",
		RedisPort:                   "6379",
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "2112",
		WriteRateLimitAllowedPerMin: 30,
		SnapshotCacheSizeMB:         16,
		SnapshotCacheTTLSeconds:     600,
		Program:                     progression.DefaultSettings(),
	}
}

// Load reads the TOML file and returns the config of the given environment.
// Every environment starts from Default, the file only overrides.
func Load(env, path string) (*Config, error) {
	t := Toml{
		Development: Default(),
		Production:  Default(),
	}
	t.Production.Environment = "production"

	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys: %v", undecoded)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if err := cfg.Program.Validate(); err != nil {
		return nil, fmt.Errorf("program settings: %w", err)
	}

	return cfg, nil
}
