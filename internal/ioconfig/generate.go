package ioconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dev-eloper-365/NeerSetuBackend/pkg/config"
	"gopkg.in/yaml.v3"
)

// ConfigFileExists reports whether a config file exists at the default
// location.
func ConfigFileExists() (bool, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return false, fmt.Errorf("cannot determine home directory: %w", err)
	}

	_, err = os.Stat(config.ConfigFilePath(home))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// GenerateDefaultConfig writes the built-in defaults to the default
// config location and returns the written path. Existing files are not
// overwritten.
func GenerateDefaultConfig() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}

	path := config.ConfigFilePath(home)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(config.New())
	if err != nil {
		return "", fmt.Errorf("cannot marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write config file: %w", err)
	}
	return path, nil
}
