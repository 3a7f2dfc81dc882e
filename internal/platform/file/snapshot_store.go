package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/coursetrack/coursetrack/internal/store"
)

// SnapshotStore implements store.SnapshotStore using one JSON file on disk.
// Saves go through a temp file plus rename so a crash mid-write never leaves
// a truncated snapshot behind.
type SnapshotStore struct {
	path   string
	logger *slog.Logger
}

// NewSnapshotStore creates a file-backed snapshot store at the given path.
// If logger is nil, a default logger will be used.
func NewSnapshotStore(path string, logger *slog.Logger) *SnapshotStore {
	if path == "" {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("path cannot be empty for file SnapshotStore")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SnapshotStore{
		path:   path,
		logger: logger.With(slog.String("component", "file_snapshot_store")),
	}
}

// Ensure SnapshotStore implements store.SnapshotStore
var _ store.SnapshotStore = (*SnapshotStore)(nil)

// Load implements store.SnapshotStore.Load.
// Returns store.ErrSnapshotNotFound when the file does not exist yet and
// store.ErrInvalidSnapshot when its contents do not parse.
func (s *SnapshotStore) Load(ctx context.Context) (store.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return store.Snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return store.Snapshot{}, store.ErrSnapshotNotFound
	}
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to read snapshot file %s: %w", s.path, err)
	}

	snap, err := store.DecodeSnapshot(data)
	if err != nil {
		s.logger.Error("snapshot file is malformed",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return store.Snapshot{}, err
	}

	return snap, nil
}

// Save implements store.SnapshotStore.Save.
func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := store.EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp snapshot file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot file %s: %w", s.path, err)
	}

	s.logger.Debug("snapshot saved",
		slog.String("path", s.path),
		slog.Int("courses", len(snap.Courses)))
	return nil
}
