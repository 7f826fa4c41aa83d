package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "quantix"
	dbFileName = "quantix.db"
)

// DefaultDBPath honors QUANTIX_DB before falling back to the user config dir.
func DefaultDBPath() (string, error) {
	if env := os.Getenv("QUANTIX_DB"); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return nil
}
