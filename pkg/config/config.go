// Package config provides configuration management for the NeerSetu
// groundwater statistics core.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Loading from files and environment is done by internal/ioconfig.
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > neersetu.yaml > defaults
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify Config
//   - Invalid options are rejected with a warning - config remains valid
//   - ToOptions() converts persistent fields (those in neersetu.yaml)
//
// # Environment Variables
//
// Use the NEERSETU_ prefix with underscores for nesting:
//
//	NEERSETU_DATABASE_HOST=localhost
//	NEERSETU_DATABASE_PORT=5432
//	NEERSETU_LOG_LEVEL=info
//	NEERSETU_JOBS_NUMBER=8
package config

import (
	"runtime"
	"time"
)

// Config represents the complete configuration of the core.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Catalog contains settings for the startup catalog load.
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`

	// Resolver contains approximate-match settings.
	Resolver ResolverConfig `mapstructure:"resolver" yaml:"resolver"`

	// Ranking contains settings for the ranking and trend engine.
	Ranking RankingConfig `mapstructure:"ranking" yaml:"ranking"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// per-year statistic fetches. Defaults to the number of CPU threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// CatalogConfig contains settings for the one-time catalog load at
// startup. The load is retried a fixed number of times with a fixed
// delay before the process signals unavailability.
type CatalogConfig struct {
	// LoadRetries is the number of load attempts before giving up.
	LoadRetries int `mapstructure:"load_retries" yaml:"load_retries"`

	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration `mapstructure:"retry_delay" yaml:"retry_delay"`

	// SnapshotFile is an optional path to a local SQLite snapshot.
	// When set, the catalog loads from the file instead of PostgreSQL.
	SnapshotFile string `mapstructure:"snapshot_file" yaml:"snapshot_file"`
}

// ResolverConfig contains approximate name matching parameters.
type ResolverConfig struct {
	// Threshold is the minimum similarity score in (0,1] a candidate
	// needs to be included in results. Lower scores are excluded,
	// not down-ranked.
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`

	// MaxResults caps the ranked result list.
	MaxResults int `mapstructure:"max_results" yaml:"max_results"`

	// ParentCandidates is how many top matches of a parent-name hint
	// are used to filter child results.
	ParentCandidates int `mapstructure:"parent_candidates" yaml:"parent_candidates"`
}

// RankingConfig contains settings for the ranking and trend engine.
type RankingConfig struct {
	// Oversample multiplies the requested k when fetching per-year top
	// lists in multi-year mode, to tolerate year-to-year rank churn.
	// Its usefulness is statistical, not structural, so it is a setting
	// rather than a constant.
	Oversample int `mapstructure:"oversample" yaml:"oversample"`

	// TrendSize is how many top locations the year-series trend keeps.
	TrendSize int `mapstructure:"trend_size" yaml:"trend_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "neersetu",
			SSLMode:  "disable",
		},
		Catalog: CatalogConfig{
			LoadRetries: 3,
			RetryDelay:  5 * time.Second,
		},
		Resolver: ResolverConfig{
			Threshold:        0.6,
			MaxResults:       5,
			ParentCandidates: 3,
		},
		Ranking: RankingConfig{
			Oversample: 2,
			TrendSize:  5,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
		},
		JobsNumber: runtime.NumCPU(),
	}
}
