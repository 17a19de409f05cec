package iodb

import (
	"errors"
	"fmt"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
)

// errNotConnected is returned when an operation runs before Connect.
var errNotConnected = errors.New("database is not connected")

func connectionError(cfg *config.DatabaseConfig, cause error) error {
	return fmt.Errorf("failed to connect to %s:%d/%s: %w",
		cfg.Host, cfg.Port, cfg.Database, cause)
}
