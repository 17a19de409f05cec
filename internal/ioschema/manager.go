// Package ioschema implements the SchemaManager contract.
// This is an impure I/O package that wraps GORM AutoMigrate.
package ioschema

import (
	"context"
	"fmt"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/db"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/lifecycle"
	"github.com/dev-eloper-365/NeerSetuBackend/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements lifecycle.SchemaManager using GORM AutoMigrate
// over the operator's pgx pool.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Init creates or updates the loader tables using GORM AutoMigrate.
func (m *manager) Init(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return fmt.Errorf("schema init: database is not connected")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return fmt.Errorf("schema init: cannot open GORM connection: %w", err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return fmt.Errorf("schema init: AutoMigrate failed: %w", err)
	}
	return nil
}
