// Package sqlite persists registry snapshots in a SQLite database using the
// ncruces/go-sqlite3 driver.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/particlezoo/internal/log"
)

// Schema creates the snapshot tables. Every statement is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	release TEXT NOT NULL,
	particle_count INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS particles (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	symbol TEXT NOT NULL,
	name TEXT NOT NULL,
	class TEXT NOT NULL,
	spin TEXT NOT NULL,
	charge INTEGER NOT NULL,
	lepton_number INTEGER NOT NULL,
	baryon_number INTEGER NOT NULL,
	generation INTEGER,
	mass_value REAL,
	mass_unit TEXT,
	half_life_value REAL,
	half_life_unit TEXT,
	antimatter INTEGER NOT NULL,
	PRIMARY KEY (snapshot_id, symbol)
);

CREATE TABLE IF NOT EXISTS particle_categories (
	snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
	category TEXT NOT NULL,
	symbol TEXT NOT NULL,
	PRIMARY KEY (snapshot_id, category, symbol)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
`

// DB wraps the connection pool and hands out repositories.
type DB struct {
	conn *sql.DB
}

// NewDB opens (creating if needed) the database at path and applies Schema.
// The parent directory is created with 0700 permissions.
func NewDB(path string) (*DB, error) {
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", "file:"+cleanPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec(Schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	log.Debug(log.CatExport, "opened snapshot database", "path", cleanPath)
	return &DB{conn: conn}, nil
}

// Snapshots returns the snapshot repository backed by this database.
func (db *DB) Snapshots() *SnapshotRepository {
	return newSnapshotRepository(db.conn)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
