// Package envfile loads environment variables from .env files.
// Variables already set in the environment take precedence.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist. Returns an error only for read or
// parse failures.
func Load(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// LoadDefaults loads .env.local, then .env from the working directory, then
// the env file in configDir (skipped when configDir is empty). Earlier files
// win because no file overrides a variable that is already set.
func LoadDefaults(configDir string) error {
	paths := []string{".env.local", ".env"}
	if configDir != "" {
		paths = append(paths, filepath.Join(configDir, "env"))
	}
	var errs []error
	for _, path := range paths {
		if err := Load(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
