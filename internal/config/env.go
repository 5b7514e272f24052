package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvOutput  = "TEXTTABLE_OUTPUT"
	EnvAlign   = "TEXTTABLE_ALIGN"
	EnvSpacing = "TEXTTABLE_SPACING"
)

// DefaultEnvPath returns the .env file next to the config file.
func DefaultEnvPath() (string, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), ".env"), nil
}

// LoadEnvFile loads KEY=value pairs from path into the process environment.
// Variables that are already set keep their value. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
