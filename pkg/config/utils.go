package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// findEnvFile looks for name in dir and then in each parent directory,
// so the binary and package tests can share one .env at the repo root.
// An absolute name is only checked as is.
func findEnvFile(dir, name string) (string, error) {
	if name == "" {
		name = ".env"
	}
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", err
		}
		return name, nil
	}

	for curr := dir; ; {
		candidate := filepath.Join(curr, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			return "", fmt.Errorf("%s not found above %s: %w", name, dir, os.ErrNotExist)
		}
		curr = parent
	}
}

// maskValue hides all but the edges of a secret for logging.
func maskValue(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
