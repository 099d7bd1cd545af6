package telemetry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed recorder for operational analytics.
type Store struct {
	conn *sqlx.DB
	run  string
}

// OpenStore opens or creates the analytics database at path and starts a new
// run identity.
func OpenStore(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open telemetry db: %w", err)
	}
	s := &Store{conn: conn, run: uuid.NewString()}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate telemetry db: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Run returns the run identity stamped on recorded events.
func (s *Store) Run() string { return s.run }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run TEXT NOT NULL,
		type TEXT NOT NULL,
		at TIMESTAMP NOT NULL,
		metadata TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_run ON events(run);
	CREATE INDEX IF NOT EXISTS idx_events_type ON events(type);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Record implements Recorder. Failures are logged, never surfaced.
func (s *Store) Record(t EventType, meta Metadata) {
	raw, err := json.Marshal(meta)
	if err != nil {
		slog.Debug("telemetry marshal failed", "type", t, "error", err)
		return
	}
	_, err = s.conn.Exec(
		`INSERT INTO events (run, type, at, metadata) VALUES (?, ?, ?, ?)`,
		s.run, string(t), time.Now().UTC(), string(raw),
	)
	if err != nil {
		slog.Debug("telemetry insert failed", "type", t, "error", err)
	}
}

// Events returns all events of the current run, oldest first.
func (s *Store) Events() ([]Event, error) {
	var out []Event
	err := s.conn.Select(&out, `SELECT id, run, type, at, metadata FROM events WHERE run = ? ORDER BY id`, s.run)
	if err != nil {
		return nil, fmt.Errorf("query telemetry events: %w", err)
	}
	return out, nil
}
