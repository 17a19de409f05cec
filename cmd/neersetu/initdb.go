package main

import (
	"context"
	"fmt"

	"github.com/dev-eloper-365/NeerSetuBackend/internal/iodb"
	"github.com/dev-eloper-365/NeerSetuBackend/internal/ioschema"
	"github.com/spf13/cobra"
)

func getInitDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Creates the database tables the loaders read",
		Long: `Creates the locations and gw_reports tables using GORM AutoMigrate.

The operation is idempotent: running it against an already initialized
database updates missing columns and indexes and leaves data untouched.

Examples:
  neersetu init-db
  neersetu init-db --config custom.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			ctx := context.Background()

			op := iodb.NewPgxOperator()
			if err := op.Connect(ctx, &cfg.Database); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer op.Close()

			manager := ioschema.NewManager(op)
			if err := manager.Init(ctx); err != nil {
				return fmt.Errorf("schema initialization failed: %w", err)
			}

			fmt.Println("Database schema initialized")
			return nil
		},
	}
	return cmd
}
