// Package ioconfig provides I/O operations for loading configuration
// from files, environment variables and flags. This is an impure
// package; the pure configuration model lives in pkg/config.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about the
// source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns a Config with
// source info. If configPath is empty, it searches default locations:
//   - ./neersetu.yaml
//   - ~/.config/neersetu/neersetu.yaml
//
// Precedence: flags > env vars > config file > defaults.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Enable environment variable overrides.
	v.SetEnvPrefix("NEERSETU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults BEFORE reading config - even if a config file
	// exists, defaults ensure viper knows which keys to check for env
	// vars.
	defaults := config.New()
	v.SetDefault("database.host", defaults.Database.Host)
	v.SetDefault("database.port", defaults.Database.Port)
	v.SetDefault("database.user", defaults.Database.User)
	v.SetDefault("database.password", defaults.Database.Password)
	v.SetDefault("database.database", defaults.Database.Database)
	v.SetDefault("database.ssl_mode", defaults.Database.SSLMode)
	v.SetDefault("catalog.load_retries", defaults.Catalog.LoadRetries)
	v.SetDefault("catalog.retry_delay", defaults.Catalog.RetryDelay)
	v.SetDefault("resolver.threshold", defaults.Resolver.Threshold)
	v.SetDefault("resolver.max_results", defaults.Resolver.MaxResults)
	v.SetDefault("resolver.parent_candidates", defaults.Resolver.ParentCandidates)
	v.SetDefault("ranking.oversample", defaults.Ranking.Oversample)
	v.SetDefault("ranking.trend_size", defaults.Ranking.TrendSize)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("jobs_number", defaults.JobsNumber)

	selectedPath := configPath
	if selectedPath == "" {
		for _, candidate := range defaultConfigPaths() {
			if _, statErr := os.Stat(candidate); statErr == nil {
				selectedPath = candidate
				break
			}
		}
	}

	configFileRead := false
	usedConfigPath := ""

	if selectedPath != "" {
		v.SetConfigFile(selectedPath)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file not found: %s", selectedPath)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	res := &LoadResult{Config: &cfg}
	switch {
	case configFileRead:
		res.Source = "file"
		res.SourcePath = usedConfigPath
	case hasEnvOverrides():
		res.Source = "defaults+env"
	default:
		res.Source = "defaults"
	}
	return res, nil
}

// defaultConfigPaths lists the locations searched when no explicit
// config path is given, in priority order.
func defaultConfigPaths() []string {
	paths := []string{"./neersetu.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, config.ConfigFilePath(home))
	}
	return paths
}

func hasEnvOverrides() bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "NEERSETU_") {
			return true
		}
	}
	return false
}
