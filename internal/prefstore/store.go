package prefstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"soundcheck/internal/config"
	"soundcheck/internal/preset"
	"soundcheck/internal/services"
)

const (
	keySelectedPreset = "selected_preset"
	keyCustomPreset   = "custom_preset"
)

// Store manages preference persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the preference database. The accompanying
// lock file serializes writers across processes; Open fails fast when another
// process holds the store.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrStore, "prefstore", "open", "ensure directories", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.StoreDir, "prefs.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "prefstore", "open", "acquire lock", err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrStore, "prefstore", "open", "store is locked by another process", nil)
	}

	dbPath := filepath.Join(cfg.Paths.StoreDir, "prefs.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, services.Wrap(services.ErrStore, "prefstore", "open", "open sqlite db", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, services.Wrap(services.ErrStore, "prefstore", "open", fmt.Sprintf("apply pragma %q", pragma), execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the store lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	if s.db != nil {
		firstErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func (s *Store) applySchema(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			preset     TEXT NOT NULL,
			started_at TEXT NOT NULL,
			total      INTEGER NOT NULL,
			passed     INTEGER NOT NULL,
			warned     INTEGER NOT NULL,
			failed     INTEGER NOT NULL,
			errored    INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return services.Wrap(services.ErrStore, "prefstore", "migrate", "apply schema", err)
		}
	}
	return nil
}

// SelectedPreset returns the persisted preset identifier, or "" when no
// selection has been recorded.
func (s *Store) SelectedPreset(ctx context.Context) (string, error) {
	value, err := s.getPreference(ctx, keySelectedPreset)
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSelectedPreset records the active preset identifier.
func (s *Store) SetSelectedPreset(ctx context.Context, id string) error {
	return s.setPreference(ctx, keySelectedPreset, id)
}

// CustomPreset returns the persisted custom preset criteria. The boolean
// reports whether a custom preset has ever been saved.
func (s *Store) CustomPreset(ctx context.Context) (preset.Config, bool, error) {
	value, err := s.getPreference(ctx, keyCustomPreset)
	if err != nil {
		return preset.Config{}, false, err
	}
	if value == "" {
		return preset.Config{}, false, nil
	}
	var cfg preset.Config
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		return preset.Config{}, false, services.Wrap(services.ErrStore, "prefstore", "load custom preset", "malformed stored criteria", err)
	}
	return cfg, true, nil
}

// SaveCustomPreset persists the custom preset criteria.
func (s *Store) SaveCustomPreset(ctx context.Context, cfg preset.Config) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return services.Wrap(services.ErrStore, "prefstore", "save custom preset", "encode criteria", err)
	}
	return s.setPreference(ctx, keyCustomPreset, string(payload))
}

// RunRecord summarizes one batch classification run.
type RunRecord struct {
	ID        string
	Preset    string
	StartedAt time.Time
	Total     int
	Passed    int
	Warned    int
	Failed    int
	Errored   int
}

// RecordRun persists a batch run summary.
func (s *Store) RecordRun(ctx context.Context, record RunRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, preset, started_at, total, passed, warned, failed, errored)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.Preset, record.StartedAt.UTC().Format(time.RFC3339Nano),
		record.Total, record.Passed, record.Warned, record.Failed, record.Errored,
	)
	if err != nil {
		return services.Wrap(services.ErrStore, "prefstore", "record run", record.ID, err)
	}
	return nil
}

// RecentRuns returns the most recent batch run summaries, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, preset, started_at, total, passed, warned, failed, errored
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, services.Wrap(services.ErrStore, "prefstore", "list runs", "", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var record RunRecord
		var startedAt string
		if err := rows.Scan(&record.ID, &record.Preset, &startedAt,
			&record.Total, &record.Passed, &record.Warned, &record.Failed, &record.Errored); err != nil {
			return nil, services.Wrap(services.ErrStore, "prefstore", "scan run", "", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			record.StartedAt = parsed
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, services.Wrap(services.ErrStore, "prefstore", "list runs", "", err)
	}
	return records, nil
}

func (s *Store) getPreference(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", services.Wrap(services.ErrStore, "prefstore", "get preference", key, err)
	}
	return value, nil
}

func (s *Store) setPreference(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return services.Wrap(services.ErrStore, "prefstore", "set preference", key, err)
	}
	return nil
}
