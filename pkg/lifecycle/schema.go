// Package lifecycle defines contracts for database lifecycle
// operations the CLI drives.
package lifecycle

import (
	"context"
)

// SchemaManager bootstraps the tables the loaders read. It uses GORM
// AutoMigrate, so initialization is idempotent - safe to run multiple
// times. Ongoing schema migrations are out of scope; this is
// create-only.
type SchemaManager interface {
	// Init creates the schema in an empty or existing database.
	Init(ctx context.Context) error
}
