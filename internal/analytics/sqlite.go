package analytics

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/brazdilr/bardio/internal/db"
)

const currentSchemaVersion = 1

// SQLiteSink appends events to a SQLite database.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the event database at path.
func OpenSQLite(path string) (*SQLiteSink, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// :memory: databases are per connection.
	conn.SetMaxOpenConns(1)

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init analytics schema: %w", err)
	}

	return &SQLiteSink{db: conn}, nil
}

func initSchema(conn *sql.DB) error {
	return db.WithTx(conn, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS events (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				session TEXT NOT NULL,
				name TEXT NOT NULL,
				props TEXT,
				created_at INTEGER NOT NULL
			);

			CREATE INDEX IF NOT EXISTS idx_events_session ON events(session, created_at);
			CREATE INDEX IF NOT EXISTS idx_events_name ON events(name);
		`)
		if err != nil {
			return err
		}

		_, err = tx.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
		return err
	})
}

func (s *SQLiteSink) Record(e Event) error {
	var props sql.NullString
	if len(e.Props) > 0 {
		data, err := json.Marshal(e.Props)
		if err != nil {
			return err
		}
		props = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO events (session, name, props, created_at) VALUES (?, ?, ?, ?)`,
		e.Session, e.Name, props, e.At.UnixMilli(),
	)
	return err
}

// Recent returns up to limit events, newest first.
func (s *SQLiteSink) Recent(limit int) ([]Event, error) {
	rows, err := s.db.Query(`
		SELECT session, name, props, created_at
		FROM events
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e     Event
			props sql.NullString
			at    int64
		)
		if err := rows.Scan(&e.Session, &e.Name, &props, &at); err != nil {
			return nil, err
		}
		if raw := db.NullStringValue(props); raw != "" {
			if err := json.Unmarshal([]byte(raw), &e.Props); err != nil {
				return nil, fmt.Errorf("decode props of %s: %w", e.Name, err)
			}
		}
		e.At = time.UnixMilli(at)
		events = append(events, e)
	}
	return events, rows.Err()
}

// Counts returns the number of events per name.
func (s *SQLiteSink) Counts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT name, COUNT(*) FROM events GROUP BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			name string
			n    int
		)
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, rows.Err()
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
