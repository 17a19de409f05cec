// Package db defines the interface for basic database management
// operations.
package db

import (
	"context"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator provides connection lifecycle management and exposes the
// pgxpool.Pool so higher-level components (schema manager, loaders) can
// execute their specialized SQL internally.
//
// The interface stays minimal: schema creation goes through GORM
// AutoMigrate in internal/ioschema, bulk reads go through
// internal/ioload.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for components to run
	// transactions, bulk reads and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema. Used to decide whether init-db needs confirmation.
	HasTables(ctx context.Context) (bool, error)
}
