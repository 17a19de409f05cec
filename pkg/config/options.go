package config

import (
	"log/slog"
	"strings"
	"time"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		switch s {
		case "disable", "require", "verify-ca", "verify-full":
			c.Database.SSLMode = s
		default:
			slog.Warn("Ignoring invalid option value",
				"option", "Database.SSLMode", "value", s)
		}
	}
}

// OptCatalogLoadRetries sets the number of catalog load attempts.
func OptCatalogLoadRetries(i int) Option {
	return func(c *Config) {
		if isValidInt("Catalog LoadRetries", i) {
			c.Catalog.LoadRetries = i
		}
	}
}

// OptCatalogRetryDelay sets the fixed pause between load attempts.
func OptCatalogRetryDelay(d time.Duration) Option {
	return func(c *Config) {
		if d <= 0 {
			slog.Warn("Ignoring invalid option value",
				"option", "Catalog.RetryDelay", "value", d)
			return
		}
		c.Catalog.RetryDelay = d
	}
}

// OptCatalogSnapshotFile sets the local SQLite snapshot path.
// Runtime-only field - not in ToOptions().
func OptCatalogSnapshotFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if s != "" {
			c.Catalog.SnapshotFile = s
		}
	}
}

// OptResolverThreshold sets the minimum similarity score for fuzzy
// matches. Must be in (0,1].
func OptResolverThreshold(f float64) Option {
	return func(c *Config) {
		if f <= 0 || f > 1 {
			slog.Warn("Ignoring invalid option value",
				"option", "Resolver.Threshold", "value", f)
			return
		}
		c.Resolver.Threshold = f
	}
}

// OptResolverMaxResults caps the ranked result list of the resolver.
func OptResolverMaxResults(i int) Option {
	return func(c *Config) {
		if isValidInt("Resolver MaxResults", i) {
			c.Resolver.MaxResults = i
		}
	}
}

// OptResolverParentCandidates sets how many parent-hint matches are
// used for scoping child results.
func OptResolverParentCandidates(i int) Option {
	return func(c *Config) {
		if isValidInt("Resolver ParentCandidates", i) {
			c.Resolver.ParentCandidates = i
		}
	}
}

// OptRankingOversample sets the multi-year per-year fetch multiplier.
func OptRankingOversample(i int) Option {
	return func(c *Config) {
		if isValidInt("Ranking Oversample", i) {
			c.Ranking.Oversample = i
		}
	}
}

// OptRankingTrendSize sets how many locations the trend series keeps.
func OptRankingTrendSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Ranking TrendSize", i) {
			c.Ranking.TrendSize = i
		}
	}
}

// OptLogFormat sets the log output format ('json' or 'text').
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		switch s {
		case "json", "text":
			c.Log.Format = s
		default:
			slog.Warn("Ignoring invalid option value",
				"option", "Log.Format", "value", s)
		}
	}
}

// OptLogLevel sets the log level ('error', 'warn', 'info', 'debug').
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		switch s {
		case "error", "warn", "info", "debug":
			c.Log.Level = s
		default:
			slog.Warn("Ignoring invalid option value",
				"option", "Log.Level", "value", s)
		}
	}
}

// OptJobsNumber sets the number of concurrent fetch workers.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

func isValidString(name, s string) bool {
	if s == "" {
		slog.Warn("Ignoring empty option value", "option", name)
		return false
	}
	return true
}

func isValidInt(name string, i int) bool {
	if i <= 0 {
		slog.Warn("Ignoring non-positive option value",
			"option", name, "value", i)
		return false
	}
	return true
}
