package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"substation/internal/document"
)

// ErrLocked indicates another process holds the catalog lock.
var ErrLocked = errors.New("catalog is locked by another process")

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the catalog database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !acquired {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the catalog lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

const entryColumns = "id, path, title, script_type, style_count, event_count, warning_count, duration_cs, added_at, updated_at"

// Add records a loaded script, replacing any earlier entry for the same
// path.
func (s *Store) Add(ctx context.Context, path string, doc *document.Document) (*Entry, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	entry := summarize(absolute, doc)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	existing, err := s.GetByPath(ctx, absolute)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		_, err = s.db.ExecContext(ctx,
			`UPDATE scripts SET title = ?, script_type = ?, style_count = ?, event_count = ?,
			 warning_count = ?, duration_cs = ?, updated_at = ? WHERE path = ?`,
			entry.Title, entry.ScriptType, entry.Styles, entry.Events,
			entry.Warnings, int(entry.Duration), now, absolute,
		)
		if err != nil {
			return nil, fmt.Errorf("update entry: %w", err)
		}
		return s.GetByPath(ctx, absolute)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scripts (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), absolute, entry.Title, entry.ScriptType, entry.Styles,
		entry.Events, entry.Warnings, int(entry.Duration), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	return s.GetByPath(ctx, absolute)
}

// GetByPath fetches an entry by script path, or nil when absent.
func (s *Store) GetByPath(ctx context.Context, path string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM scripts WHERE path = ?`, path)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// GetByID fetches an entry by identifier, or nil when absent.
func (s *Store) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM scripts WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// List returns every entry, most recently updated first.
func (s *Store) List(ctx context.Context) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM scripts ORDER BY updated_at DESC, path ASC`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// Remove deletes the entry for a path and reports whether one existed.
func (s *Store) Remove(ctx context.Context, path string) (bool, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("resolve path: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM scripts WHERE path = ?`, absolute)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var entry Entry
	var duration int
	var addedAt, updatedAt string
	err := row.Scan(&entry.ID, &entry.Path, &entry.Title, &entry.ScriptType,
		&entry.Styles, &entry.Events, &entry.Warnings, &duration, &addedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	entry.Duration = document.Timecode(duration)
	if t, err := time.Parse(time.RFC3339Nano, addedAt); err == nil {
		entry.AddedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		entry.UpdatedAt = t
	}
	return &entry, nil
}
