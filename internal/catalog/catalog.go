// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records completed conversions in a SQLite database so a
// later run can list what was converted, from where, and when.
// See docs/ARCHITECTURE § Catalog.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/orcaconv/pkg/types"
)

const dbFile = "orcaconv.db"

// Record is one catalog row: a single profile conversion.
type Record struct {
	Name        string
	Type        types.ProfileType
	Flavor      types.Flavor
	SourcePath  string
	OutputPath  string
	ConvertedAt time.Time
}

// Store manages the catalog database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at catalogDir/orcaconv.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS conversions (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		flavor TEXT,
		source_path TEXT,
		output_path TEXT,
		converted_at TEXT NOT NULL,
		UNIQUE(name, type) ON CONFLICT REPLACE
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Add inserts a record, replacing any earlier conversion of the same preset.
func (s *Store) Add(r Record) error {
	if r.ConvertedAt.IsZero() {
		r.ConvertedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO conversions (name, type, flavor, source_path, output_path, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Name, string(r.Type), string(r.Flavor), r.SourcePath, r.OutputPath,
		r.ConvertedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording conversion %s: %w", r.Name, err)
	}
	return nil
}

// List returns the most recent conversions, newest first. A non-positive
// limit falls back to the configured maximum.
func (s *Store) List(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.Query(
		`SELECT name, type, flavor, source_path, output_path, converted_at
		 FROM conversions ORDER BY converted_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r  Record
			ts string
		)
		if err := rows.Scan(&r.Name, &r.Type, &r.Flavor, &r.SourcePath, &r.OutputPath, &ts); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			r.ConvertedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
