/*
Package sqlite provides SQLite-backed persistence for the API layer.

PURPOSE:
  The calculation engine itself is pure and stateless; the only things
  worth persisting are caller-owned: named snapshots (so a founder's
  inputs survive restarts) and checklist completion state keyed by the
  stable action-item keys the plan builder emits.

KEY TABLES:
  snapshots:       Named snapshot documents, stored as JSON payloads
  checklist_state: (snapshot_id, item_key) -> done flag

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of database/sql.

USAGE:
  store, err := sqlite.New("./data/compliance.db")   // or ":memory:"
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/handlers.go: The only consumer
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrSnapshotNotFound is returned when a snapshot id does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Store persists snapshots and checklist state.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// SnapshotRecord is one stored snapshot document.
type SnapshotRecord struct {
	ID        string
	Name      string
	Payload   []byte
	CreatedAt time.Time
}

// New opens (or creates) the database at path. Use ":memory:" for tests.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS checklist_state (
		snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
		item_key    TEXT NOT NULL,
		done        INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (snapshot_id, item_key)
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// =============================================================================
// SNAPSHOTS
// =============================================================================

// SaveSnapshot stores a snapshot payload under a fresh id.
func (s *Store) SaveSnapshot(ctx context.Context, name string, payload []byte) (SnapshotRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := SnapshotRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, name, payload, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Name, string(rec.Payload), rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("save snapshot: %w", err)
	}
	return rec, nil
}

// GetSnapshot fetches one stored snapshot by id.
func (s *Store) GetSnapshot(ctx context.Context, id string) (SnapshotRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rec SnapshotRecord
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, payload, created_at FROM snapshots WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Name, &rec.Payload, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return SnapshotRecord{}, ErrSnapshotNotFound
	}
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("get snapshot: %w", err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return rec, nil
}

// ListSnapshots returns stored snapshots, newest first.
func (s *Store) ListSnapshots(ctx context.Context) ([]SnapshotRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, payload, created_at FROM snapshots ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRecord
	for rows.Next() {
		var rec SnapshotRecord
		var created string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Payload, &created); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteSnapshot removes a snapshot and, via cascade, its checklist state.
func (s *Store) DeleteSnapshot(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

// =============================================================================
// CHECKLIST STATE
// =============================================================================

// SetChecklistItem upserts the done flag for one stable item key.
func (s *Store) SetChecklistItem(ctx context.Context, snapshotID, itemKey string, done bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Reject unknown snapshots up front so the error stays typed instead of
	// surfacing as a foreign-key failure.
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM snapshots WHERE id = ?`, snapshotID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSnapshotNotFound
	}
	if err != nil {
		return fmt.Errorf("check snapshot: %w", err)
	}

	flag := 0
	if done {
		flag = 1
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO checklist_state (snapshot_id, item_key, done, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(snapshot_id, item_key) DO UPDATE SET done = excluded.done, updated_at = excluded.updated_at`,
		snapshotID, itemKey, flag, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("set checklist item: %w", err)
	}
	return nil
}

// ChecklistState returns the done flags recorded for a snapshot.
func (s *Store) ChecklistState(ctx context.Context, snapshotID string) (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT item_key, done FROM checklist_state WHERE snapshot_id = ?`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("load checklist state: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var key string
		var done int
		if err := rows.Scan(&key, &done); err != nil {
			return nil, fmt.Errorf("scan checklist row: %w", err)
		}
		out[key] = done == 1
	}
	return out, rows.Err()
}
