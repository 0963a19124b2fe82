// seehuhn.de/go/fontclass - classify fonts by visual weight, width and slant
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package store keeps font classification tables in an SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"seehuhn.de/go/fontclass/table"
)

const schema = `CREATE TABLE IF NOT EXISTS fonts (
	gfn   TEXT PRIMARY KEY,
	fwe   INTEGER NOT NULL,
	fia   INTEGER NOT NULL,
	fwi   INTEGER NOT NULL,
	usage TEXT NOT NULL DEFAULT 'unknown'
)`

// DB is a classification database.
type DB struct {
	db *sql.DB
}

// IsDatabase reports whether fname looks like the name of a database file,
// rather than a CSV table.
func IsDatabase(fname string) bool {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Open opens or creates the database at the given path.
func Open(fname string) (*DB, error) {
	db, err := sql.Open("sqlite", fname)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Save replaces the contents of the database with the given rows.
// If an identifier occurs more than once, the last row wins.
func (s *DB) Save(ctx context.Context, t table.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fonts`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO fonts (gfn, fwe, fia, fwi, usage) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, row := range t {
		usage := row.Usage
		if usage == "" {
			usage = table.UsageUnknown
		}
		_, err := stmt.ExecContext(ctx, row.GFN, row.Weight, row.Angle, row.Width, usage)
		if err != nil {
			return fmt.Errorf("%s: %w", row.GFN, err)
		}
	}
	return tx.Commit()
}

// Load returns all rows, ordered by identifier.
func (s *DB) Load(ctx context.Context) (table.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT gfn, fwe, fia, fwi, usage FROM fonts ORDER BY gfn`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var t table.Table
	for rows.Next() {
		var row table.Row
		err := rows.Scan(&row.GFN, &row.Weight, &row.Angle, &row.Width, &row.Usage)
		if err != nil {
			return nil, err
		}
		t = append(t, row)
	}
	return t, rows.Err()
}

// ReadTable loads a table from a database file or a CSV file, depending on
// the file name extension.
func ReadTable(ctx context.Context, fname string) (table.Table, error) {
	if !IsDatabase(fname) {
		return table.ReadFile(fname)
	}
	db, err := Open(fname)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.Load(ctx)
}

// WriteTable stores a table in a database file or a CSV file, depending on
// the file name extension.
func WriteTable(ctx context.Context, fname string, t table.Table) error {
	if !IsDatabase(fname) {
		return table.WriteFile(fname, t)
	}
	db, err := Open(fname)
	if err != nil {
		return err
	}
	err = db.Save(ctx, t)
	err2 := db.Close()
	if err == nil {
		err = err2
	}
	return err
}
