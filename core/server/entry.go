package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEntryMissing is returned when the entry page is absent from the served root.
var ErrEntryMissing = errors.New("entry file not found")

// CheckEntry verifies that cfg.Entry exists as a regular file inside cfg.Root.
func CheckEntry(cfg Config) error {
	path := filepath.Join(cfg.Root, cfg.Entry)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrEntryMissing, cfg.Entry)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrEntryMissing, cfg.Entry)
	}
	return nil
}
