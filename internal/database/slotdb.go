package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// FileName is the database file name under the data directory.
const FileName = "carcompare.db"

// SlotDB provides SQLite-backed storage of named string slots.
// It manages the connection pool and exposes read/write/clear operations
// on raw payloads; interpretation of a payload belongs to the caller.
type SlotDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures SlotDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging so that a watching process can
	// read the slot while another process writes it.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a SlotDB under the given directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned.
func Open(dbDir string, opts Options) (*SlotDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single pooled connection avoids
	// SQLITE_BUSY churn between our own goroutines.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &SlotDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *SlotDB) Close() error {
	return sdb.db.Close()
}

// Path returns the path of the database file. The persistence watcher uses
// it to subscribe to external changes.
func (sdb *SlotDB) Path() string {
	return sdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (sdb *SlotDB) createTables() error {
	schema := `
	-- One row per named slot holding an opaque payload.
	CREATE TABLE IF NOT EXISTS slots (
		name TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// WriteSlot stores the payload under the slot name, replacing any previous
// value. Uses UPSERT so last writer wins.
func (sdb *SlotDB) WriteSlot(ctx context.Context, name, payload string) error {
	query := `
	INSERT INTO slots (name, payload, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(name) DO UPDATE SET
		payload = excluded.payload,
		updated_at = CURRENT_TIMESTAMP
	`

	if _, err := sdb.db.ExecContext(ctx, query, name, payload); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", name, err)
	}
	return nil
}

// ReadSlot returns the payload stored under the slot name. An absent slot
// yields ("", false, nil); that is a normal state, not an error.
func (sdb *SlotDB) ReadSlot(ctx context.Context, name string) (string, bool, error) {
	query := `SELECT payload FROM slots WHERE name = ?`

	var payload string
	err := sdb.db.QueryRowContext(ctx, query, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %q: %w", name, err)
	}
	return payload, true, nil
}

// ClearSlot deletes the slot if present. Clearing an absent slot is a no-op.
func (sdb *SlotDB) ClearSlot(ctx context.Context, name string) error {
	if _, err := sdb.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to clear slot %q: %w", name, err)
	}
	return nil
}
