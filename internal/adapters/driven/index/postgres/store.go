// Package postgres provides the two retrieval index clients over a shared
// Postgres database: nearest-neighbour search on a pgvector column and
// ranked full-text search on a tsvector column. The indexing pipeline owns
// the schema and writes; these clients only read.
package postgres

import (
	"database/sql"
	"fmt"
	"time"

	// Registers the "postgres" driver.
	_ "github.com/lib/pq"
)

// chunksTable is the table the indexing pipeline writes transcript chunks to.
const chunksTable = "transcript_chunks"

// Store wraps the shared database handle used by both index clients.
// It is safe for concurrent use; database/sql pools connections internally.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres with the given DSN.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: DSN is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying handle for the index clients.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
