package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validateContentPath checks that path names an existing regular file.
func validateContentPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("content file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve content path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("content file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("content path %s is a directory", abs)
	}

	return abs, nil
}
