package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coursetrack/coursetrack/internal/store"
)

// The whole tracker state lives in one row; the CHECK constraint in the
// migration pins its id to 1.
const snapshotRowID = 1

// SnapshotStore implements the store.SnapshotStore interface using a
// PostgreSQL database as the storage backend.
type SnapshotStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSnapshotStore creates a PostgreSQL implementation of the SnapshotStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewSnapshotStore(db store.DBTX, logger *slog.Logger) *SnapshotStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil for postgres SnapshotStore")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SnapshotStore{
		db:     db,
		logger: logger.With(slog.String("component", "postgres_snapshot_store")),
	}
}

// Ensure SnapshotStore implements store.SnapshotStore
var _ store.SnapshotStore = (*SnapshotStore)(nil)

// Load implements store.SnapshotStore.Load.
// Returns store.ErrSnapshotNotFound when no snapshot row exists and
// store.ErrInvalidSnapshot when the stored payload does not parse.
func (s *SnapshotStore) Load(ctx context.Context) (store.Snapshot, error) {
	query := `SELECT data FROM snapshots WHERE id = $1`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, snapshotRowID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Snapshot{}, store.ErrSnapshotNotFound
	}
	if err != nil {
		s.logger.Error("failed to load snapshot row", slog.String("error", err.Error()))
		return store.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	snap, err := store.DecodeSnapshot(data)
	if err != nil {
		s.logger.Error("stored snapshot is malformed", slog.String("error", err.Error()))
		return store.Snapshot{}, err
	}

	return snap, nil
}

// Save implements store.SnapshotStore.Save by upserting the single row.
func (s *SnapshotStore) Save(ctx context.Context, snap store.Snapshot) error {
	data, err := store.EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO snapshots (id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	if _, err := s.db.ExecContext(ctx, query, snapshotRowID, data); err != nil {
		s.logger.Error("failed to save snapshot row",
			slog.String("error", err.Error()),
			slog.Int("courses", len(snap.Courses)))
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.logger.Debug("snapshot saved", slog.Int("courses", len(snap.Courses)))
	return nil
}
