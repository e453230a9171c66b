package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// Every pooled connection gets foreign keys, case-sensitive LIKE (path
// prefixes are matched byte for byte) and immediate write transactions so
// overlapping cascades serialize instead of interleaving.
func New(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_cslike=true&_busy_timeout=5000&_txlock=immediate", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
//
// parent_path references nodes(path) with a deferred foreign key: a cascade
// may leave children pointing at a renamed or deleted path mid-transaction,
// but every reference must resolve again by commit.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			segment TEXT NOT NULL,
			path TEXT NOT NULL UNIQUE,
			parent_path TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE (segment, parent_path),
			FOREIGN KEY (parent_path) REFERENCES nodes(path) DEFERRABLE INITIALLY DEFERRED
		);`,
		`CREATE INDEX IF NOT EXISTS idx_nodes_parent_path ON nodes(parent_path);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
