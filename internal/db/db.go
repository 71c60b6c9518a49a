package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB holding exported hub catalogs.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory SQLite database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every pooled connection would get its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenReadOnly opens an existing database without creating, migrating or
// switching its journal mode. Writes through the returned DB fail.
func OpenReadOnly(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// The file: prefix keeps mode=ro in the URI handed to SQLite.
	sqlDB, err := sql.Open("sqlite", "file:"+filepath.ToSlash(path)+"?mode=ro&_pragma=query_only(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{DB: sqlDB, path: path}, nil
}

// HasCatalog reports whether the database holds the hub catalog schema.
func (d *DB) HasCatalog(ctx context.Context) (bool, error) {
	var n int
	err := d.QueryRowContext(ctx, `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'hubs'`).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspecting schema: %w", err)
	}
	return n > 0, nil
}

// Path returns the file the database was opened from.
func (d *DB) Path() string { return d.path }

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema. Positions keep catalog order.
const schema = `
CREATE TABLE IF NOT EXISTS hubs (
    name TEXT PRIMARY KEY,
    title TEXT NOT NULL DEFAULT '',
    tagline TEXT NOT NULL DEFAULT '',
    exported_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS sections (
    hub TEXT NOT NULL REFERENCES hubs(name) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    id TEXT NOT NULL,
    label TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    intro TEXT NOT NULL DEFAULT '',
    PRIMARY KEY(hub, position)
);

CREATE TABLE IF NOT EXISTS subsections (
    hub TEXT NOT NULL,
    section_pos INTEGER NOT NULL,
    position INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    PRIMARY KEY(hub, section_pos, position),
    FOREIGN KEY(hub, section_pos) REFERENCES sections(hub, position) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS entries (
    hub TEXT NOT NULL,
    section_pos INTEGER NOT NULL,
    subsection_pos INTEGER NOT NULL,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    author TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL DEFAULT '',
    level TEXT NOT NULL DEFAULT '',
    url TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    PRIMARY KEY(hub, section_pos, subsection_pos, position),
    FOREIGN KEY(hub, section_pos, subsection_pos) REFERENCES subsections(hub, section_pos, position) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_entries_type ON entries(hub, type);
`
