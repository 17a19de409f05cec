package main

import (
	"fmt"
	"log/slog"

	"github.com/dev-eloper-365/NeerSetuBackend/internal/ioconfig"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	snapshotFile string
	cfg          *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neersetu",
		Short: "NeerSetu serves groundwater statistics for administrative regions",
		Long: `NeerSetu resolves possibly misspelled place names to administrative
entities (country → state → district → taluk), aggregates raw groundwater
assessment rows into canonical per-year records, and ranks locations by a
metric for one year or across a historical window.

Commands:
  - init-db: Create the database tables the loaders read
  - resolve: Fuzzy-resolve a place name to catalog entities
  - stats:   Show canonical statistics for a location
  - rank:    Rank locations of one level by a metric

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (NEERSETU_*)
  3. Config file (neersetu.yaml)
  4. Built-in defaults

Environment Variables:
  All configuration can be set via NEERSETU_* environment variables.
  Nested fields use underscores (database.host → NEERSETU_DATABASE_HOST).

  Examples:
    NEERSETU_DATABASE_HOST          PostgreSQL host
    NEERSETU_DATABASE_PORT          PostgreSQL port
    NEERSETU_DATABASE_USER          PostgreSQL user
    NEERSETU_DATABASE_PASSWORD      PostgreSQL password
    NEERSETU_DATABASE_DATABASE      Database name
    NEERSETU_LOG_LEVEL              Log level (debug/info/warn/error)

  See 'go doc github.com/dev-eloper-365/NeerSetuBackend/pkg/config'
  for the complete list.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate config file on first run if it doesn't exist.
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}
				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - can use defaults.
						fmt.Printf("Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Printf("Generated default config at: %s\n", generatedPath)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			if snapshotFile != "" {
				cfg.Update([]config.Option{
					config.OptCatalogSnapshotFile(snapshotFile),
				})
			}

			slog.SetDefault(logger.New(&cfg.Log))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./neersetu.yaml or ~/.config/neersetu/neersetu.yaml)")
	rootCmd.PersistentFlags().StringVar(&snapshotFile, "snapshot", "",
		"SQLite snapshot file to load instead of PostgreSQL")

	rootCmd.AddCommand(getInitDBCmd())
	rootCmd.AddCommand(getResolveCmd())
	rootCmd.AddCommand(getStatsCmd())
	rootCmd.AddCommand(getRankCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands).
func getConfig() *config.Config {
	return cfg
}
