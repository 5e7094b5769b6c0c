package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for pack.
type Paths struct {
	// ConfigFile is the path to the config file (~/.pack/user.yaml).
	ConfigFile string

	// DBDir is the directory holding package databases (~/.pack/db).
	DBDir string

	// HomeDir is the pack home directory (~/.pack).
	HomeDir string
}

// DefaultPaths returns the default paths for pack.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	packHome := filepath.Join(homeDir, ".pack")

	return &Paths{
		ConfigFile: filepath.Join(packHome, "user.yaml"),
		DBDir:      filepath.Join(packHome, "db"),
		HomeDir:    packHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If PACK_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("PACK_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetDBDir returns the package database directory path.
// If PACK_DB_DIR is set, it takes precedence.
func GetDBDir() (string, error) {
	if envPath := os.Getenv("PACK_DB_DIR"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.DBDir, nil
}

// DBFile returns the path of the named package database.
func DBFile(collection string) (string, error) {
	dir, err := GetDBDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, collection+".db"), nil
}

// EnsureDBDir creates the database directory if it doesn't exist.
func EnsureDBDir() error {
	dir, err := GetDBDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
