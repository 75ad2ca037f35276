package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	// Pure Go SQLite driver, registered as "sqlite"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

const schema = `CREATE TABLE IF NOT EXISTS codes (
	name         TEXT PRIMARY KEY,
	code         TEXT NOT NULL,
	submitted_at TEXT NOT NULL
)`

// Store persists community submissions in a SQLite database. Reads go
// through Snapshot, which returns an immutable Dictionary.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// OpenStore opens or creates the submission database at path.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	return openStore(ctx, path, true)
}

func openStore(ctx context.Context, path string, create bool) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening store: %w", err)
	}

	if create {
		if _, err := db.ExecContext(ctx, schema); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return &Store{db: db, now: time.Now}, nil
}

// Add inserts or replaces the code for name.
func (s *Store) Add(ctx context.Context, name, code string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	code = strings.TrimSpace(code)
	if !IsValidCode(code) {
		return fmt.Errorf("%w: %q for %q", ErrInvalidCode, code, name)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO codes (name, code, submitted_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET code = excluded.code, submitted_at = excluded.submitted_at`,
		name, code, s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("adding %q: %w", name, err)
	}
	return nil
}

// Remove deletes the entry for name.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM codes WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("removing %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("removing %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrEntryNotFound, name)
	}
	return nil
}

// Import adds every entry of d in a single transaction.
func (s *Store) Import(ctx context.Context, d *Dictionary) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	stamp := s.now().UTC().Format(time.RFC3339)
	for _, e := range d.Entries() {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO codes (name, code, submitted_at) VALUES (?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET code = excluded.code, submitted_at = excluded.submitted_at`,
			e.Name, e.Code, stamp,
		)
		if err != nil {
			return fmt.Errorf("importing %q: %w", e.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// Snapshot reads every entry into an immutable Dictionary.
func (s *Store) Snapshot(ctx context.Context) (*Dictionary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, code FROM codes`)
	if err != nil {
		return nil, fmt.Errorf("reading codes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Code); err != nil {
			return nil, fmt.Errorf("reading codes: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading codes: %w", err)
	}

	return FromEntries(entries)
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
