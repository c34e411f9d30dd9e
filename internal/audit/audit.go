// Package audit provides a SQLite-backed log of configuration
// operations: which zone was touched, what was done, and how it ended.
// The log is an operator convenience and never gates an operation — a
// failed audit insert is reported but the underlying change stands.
package audit

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Outcome classifies how an operation ended.
const (
	OutcomeOK               = "ok"
	OutcomeValidationFailed = "validation_failed"
	OutcomeReloadFailed     = "reload_failed"
	OutcomeError            = "error"
)

// Entry is one audit log row.
type Entry struct {
	ID        int64     `json:"id"`
	Time      time.Time `json:"time"`
	Operation string    `json:"operation"`
	Zone      string    `json:"zone,omitempty"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
}

// Store wraps the audit database.
type Store struct {
	conn *sql.DB
}

// Open opens or creates the audit database at path and brings its
// schema up to date.
func Open(path string) (*Store, error) {
	// WAL mode for concurrent readers while the manager writes.
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL", path)

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	if err := migrateUp(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate audit schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

func migrateUp(conn *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Record appends one entry. The timestamp is set here, in UTC.
func (s *Store) Record(ctx context.Context, operation, zone, outcome, detail string) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO audit_log (time, operation, zone, outcome, detail) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), operation, zone, outcome, detail)
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// List returns the newest entries first, at most limit rows.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, time, operation, zone, outcome, detail FROM audit_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Operation, &e.Zone, &e.Outcome, &e.Detail); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Time = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Health checks database connectivity.
func (s *Store) Health() error {
	return s.conn.Ping()
}
