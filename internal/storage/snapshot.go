// Package storage persists the reconciliation snapshot to local disk.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/natefinch/atomic"

	"prwatch/internal/core"
)

// FileStore reads and writes the snapshot as a JSON file at a fixed path.
// Writes go through a temp file and rename so a crash mid-write can never
// corrupt the previously durable snapshot.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a snapshot store backed by the file at path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// snapshotFile is the on-disk shape. Seen is a list rather than a map so the
// file stays diffable and stable across writes.
type snapshotFile struct {
	SeenURLs      []string                `json:"seen_urls"`
	CommentCounts map[string]int          `json:"comment_counts"`
	ReviewStates  map[string]string       `json:"review_states"`
	CIStates      map[string]core.CIState `json:"ci_states"`
}

// Load reads the snapshot from disk. A missing, unreadable or corrupt file
// degrades to an empty snapshot: the next reconciliation then behaves like a
// baseline instead of crashing the poller.
func (s *FileStore) Load() *core.Snapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("snapshot unreadable, starting empty", "path", s.path, "error", err)
		}
		return core.NewSnapshot()
	}

	var f snapshotFile
	if err := json.Unmarshal(data, &f); err != nil {
		s.logger.Warn("snapshot corrupt, starting empty", "path", s.path, "error", err)
		return core.NewSnapshot()
	}

	snap := core.NewSnapshot()
	for _, url := range f.SeenURLs {
		snap.Seen[url] = struct{}{}
	}
	for url, n := range f.CommentCounts {
		snap.CommentCounts[url] = n
	}
	for url, state := range f.ReviewStates {
		snap.ReviewStates[url] = state
	}
	for url, state := range f.CIStates {
		snap.CIStates[url] = state
	}
	return snap
}

// Save atomically replaces the snapshot file with the given snapshot.
func (s *FileStore) Save(snap *core.Snapshot) error {
	seen := make([]string, 0, len(snap.Seen))
	for url := range snap.Seen {
		seen = append(seen, url)
	}
	sort.Strings(seen)

	f := snapshotFile{
		SeenURLs:      seen,
		CommentCounts: snap.CommentCounts,
		ReviewStates:  snap.ReviewStates,
		CIStates:      snap.CIStates,
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot directory: %w", err)
		}
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.path, err)
	}
	return nil
}
