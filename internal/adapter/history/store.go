// Package history persists the wired connectivity flag between runs.
//
// The flag is true exactly when the marker file exists. Concurrent runs are not
// coordinated: the last writer wins.
package history

import (
	"context"
	"fmt"
	"sync"

	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/port"
	"wifi-toggle/internal/types"
)

// MarkerStore keeps the flag as the presence of a marker file.
type MarkerStore struct {
	path    string
	fileMgr port.FileManager
}

// Ensure MarkerStore implements the HistoryStore port
var _ port.HistoryStore = (*MarkerStore)(nil)

// NewMarkerStore creates a history store backed by the marker at path.
func NewMarkerStore(path string, fileMgr port.FileManager) *MarkerStore {
	return &MarkerStore{path: path, fileMgr: fileMgr}
}

// Path returns the marker location.
func (s *MarkerStore) Path() string {
	return s.path
}

// Read reports whether the marker exists. Errors read as false.
func (s *MarkerStore) Read(ctx context.Context) bool {
	exists, err := s.fileMgr.FileExists(s.path)
	if err != nil {
		logging.WithComponent("history").WithError(err).WithField("marker", s.path).Warn("Failed to read history marker, assuming no wired connection")
		return false
	}
	return exists
}

// Write creates the marker for true and removes it for false.
func (s *MarkerStore) Write(ctx context.Context, wiredWasActive bool) error {
	logger := logging.WithComponent("history").WithFields(map[string]interface{}{
		"marker": s.path,
		"wired":  wiredWasActive,
	})

	var err error
	if wiredWasActive {
		err = s.fileMgr.Touch(s.path)
	} else {
		err = s.fileMgr.Remove(s.path)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrPersistence, err)
	}

	logger.Debug("Stored wired history")
	return nil
}

// MemoryStore keeps the flag in memory.
type MemoryStore struct {
	mu     sync.Mutex
	value  bool
	writes int
}

// Ensure MemoryStore implements the HistoryStore port
var _ port.HistoryStore = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store holding initial.
func NewMemoryStore(initial bool) *MemoryStore {
	return &MemoryStore{value: initial}
}

func (s *MemoryStore) Read(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *MemoryStore) Write(ctx context.Context, wiredWasActive bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = wiredWasActive
	s.writes++
	return nil
}

// Writes returns how many times Write was called.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
