package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the name of the config file inside the cellcheck home.
const ConfigFileName = "cellcheck.yaml"

// CellcheckHome returns the cellcheck home directory.
// Priority order:
//  1. CELLCHECK_HOME environment variable (if set)
//  2. .cellcheck under the enclosing repository root (detected by go.mod
//     or a .cellcheck-root marker)
//  3. .cellcheck under the current working directory (fallback)
//
// The directory is created if it doesn't exist.
func CellcheckHome() (string, error) {
	if home := os.Getenv("CELLCHECK_HOME"); home != "" {
		return home, nil
	}

	if root, err := findRepoRoot(); err == nil && root != "" {
		return ensureDir(filepath.Join(root, ".cellcheck"))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return ensureDir(filepath.Join(cwd, ".cellcheck"))
}

// ConfigPath returns the path of the config file inside the cellcheck home.
func ConfigPath() (string, error) {
	home, err := CellcheckHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ConfigFileName), nil
}

// HistoryDBPath resolves the history database path: an explicit configured
// path wins, otherwise history.db inside the cellcheck home.
func HistoryDBPath(cfg *Config) (string, error) {
	if cfg != nil && cfg.History.DBPath != "" {
		return cfg.History.DBPath, nil
	}
	home, err := CellcheckHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history.db"), nil
}

func ensureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create cellcheck home directory: %w", err)
	}
	return dir, nil
}

// findRepoRoot walks upward from the working directory looking for a
// .cellcheck-root marker file or a go.mod.
func findRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	current := cwd
	for {
		if _, err := os.Stat(filepath.Join(current, ".cellcheck-root")); err == nil {
			return current, nil
		}
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current || strings.TrimSpace(parent) == "" {
			return "", fmt.Errorf("no repository root found above %s", cwd)
		}
		current = parent
	}
}
