package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/hupe1980/phonogo/inventory"
)

// Schema creates the table SaveSQLite writes to and ReadSQLite reads from.
const Schema = `CREATE TABLE IF NOT EXISTS inventories (
	name     TEXT PRIMARY KEY,
	phonemes TEXT NOT NULL
)`

// DefaultQuery selects (name, comma-separated inventory) pairs in
// insertion order.
const DefaultQuery = `SELECT name, phonemes FROM inventories ORDER BY rowid`

// OpenSQLite opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./corpus.sqlite". For an
// in-memory database use "file::memory:?cache=shared".
func OpenSQLite(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// ReadSQLite runs query and returns one record per row. The query must
// yield two text columns: the language name and its comma-separated
// inventory. An empty query means DefaultQuery.
func ReadSQLite(ctx context.Context, db *sql.DB, query string) ([]Record, error) {
	if query == "" {
		query = DefaultQuery
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("corpus: query: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var name, phonemes string
		if err := rows.Scan(&name, &phonemes); err != nil {
			return nil, fmt.Errorf("corpus: scan: %w", err)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("corpus: %w: empty name", ErrMalformedRow)
		}
		records = append(records, Record{
			Name:     name,
			Phonemes: inventory.Split(cleaner.Replace(phonemes)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("corpus: rows: %w", err)
	}
	return records, nil
}

// SaveSQLite creates the inventories table if needed and stores records
// in one transaction. Existing languages are replaced.
func SaveSQLite(ctx context.Context, db *sql.DB, records []Record) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("corpus: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("corpus: schema: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO inventories(name, phonemes) VALUES(?, ?)`)
	if err != nil {
		return fmt.Errorf("corpus: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err = stmt.ExecContext(ctx, r.Name, strings.Join(r.Phonemes, ", ")); err != nil {
			return fmt.Errorf("corpus: insert %q: %w", r.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("corpus: commit: %w", err)
	}
	return nil
}
