package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "neersetu"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/neersetu by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/neersetu by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// ConfigFilePath returns the full path to the neersetu.yaml file.
// Returns ~/.config/neersetu/neersetu.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), AppName+".yaml")
}
