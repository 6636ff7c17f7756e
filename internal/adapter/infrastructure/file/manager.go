// Package file provides file system operations adapter implementation.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"wifi-toggle/internal/port"
)

// ManagerAdapter is an adapter that implements the FileManager port using the standard os package.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the FileManager port
var _ port.FileManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new file manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// FileExists checks if a file exists. Errors other than "not found" are returned.
func (f *ManagerAdapter) FileExists(filename string) (bool, error) {
	_, err := os.Stat(filename)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat file %s: %w", filename, err)
}

// Touch creates an empty file if it does not exist yet.
func (f *ManagerAdapter) Touch(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filename, err)
	}
	fh, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", filename, err)
	}
	return nil
}

// Remove deletes a file. Removing a missing file succeeds.
func (f *ManagerAdapter) Remove(filename string) error {
	if err := os.Remove(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file %s: %w", filename, err)
	}
	return nil
}
