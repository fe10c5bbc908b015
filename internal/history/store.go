// Package history records performed morphs in a SQLite database so they can be listed and replayed.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/f3rmion/morph/internal/align"
	"github.com/f3rmion/morph/internal/glyph"
	"github.com/f3rmion/morph/internal/morph"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get when no entry has the requested ID.
var ErrNotFound = errors.New("history entry not found")

const schema = `
CREATE TABLE IF NOT EXISTS morphs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	old_text   TEXT    NOT NULL,
	new_text   TEXT    NOT NULL,
	units      TEXT    NOT NULL,
	slots      TEXT    NOT NULL,
	stationary INTEGER NOT NULL,
	moved      INTEGER NOT NULL,
	discarded  INTEGER NOT NULL,
	added      INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS morphs_created_at ON morphs (created_at);
`

// Entry is one recorded morph.
type Entry struct {
	ID        int64
	Old       string
	New       string
	Units     string // Unit mode the texts were split with.
	Result    align.Result
	Summary   align.Summary
	CreatedAt time.Time
}

// Transition rebuilds the recorded morph from its stored slots. Entries whose slots no longer fit their texts, for
// example after a change to segmentation rules, are aligned again. Slots fit when they validate and every reuse pairs
// equal units.
func (e Entry) Transition() morph.Transition {
	mode, err := glyph.ParseMode(e.Units)
	if err != nil {
		mode = glyph.Graphemes
	}
	old := glyph.Split(e.Old, mode)
	new := glyph.Split(e.New, mode)

	res := e.Result
	if !fits(res, old, new) {
		res = align.Align(old, new)
	}
	return morph.Plan(old, new, res)
}

// fits reports whether res is a valid alignment of old to new in which every reused unit lands on an equal unit.
func fits(res align.Result, old, new []string) bool {
	if res.Validate(len(old), len(new)) != nil {
		return false
	}
	for i, s := range res {
		if s.Origin.IsReuse() && old[i] != new[i+s.Origin.Offset] {
			return false
		}
	}
	return true
}

// Store is a morph history database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY between our own goroutines.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Record stores e and returns its ID. e.ID and e.CreatedAt are ignored.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	slots, err := json.Marshal(e.Result)
	if err != nil {
		return 0, fmt.Errorf("encoding slots: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO morphs (old_text, new_text, units, slots, stationary, moved, discarded, added, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.Old, e.New, e.Units, string(slots),
		e.Summary.Stationary, e.Summary.Moved, e.Summary.Discarded, e.Summary.Added,
		s.now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting morph: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading morph id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit entries, newest first. A limit <= 0 returns all entries.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, old_text, new_text, units, slots, stationary, moved, discarded, added, created_at
		FROM morphs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying morphs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}

	return entries, rows.Err()
}

// Get returns the entry with the given ID.
func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, old_text, new_text, units, slots, stationary, moved, discarded, added, created_at
		FROM morphs
		WHERE id = ?
	`, id)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return e, err
}

// Count returns the number of recorded entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM morphs").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting morphs: %w", err)
	}
	return n, nil
}

// Clear deletes all entries.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM morphs"); err != nil {
		return fmt.Errorf("clearing morphs: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		e       Entry
		slots   string
		created int64
	)
	if err := row.Scan(
		&e.ID, &e.Old, &e.New, &e.Units, &slots,
		&e.Summary.Stationary, &e.Summary.Moved, &e.Summary.Discarded, &e.Summary.Added,
		&created,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning morph: %w", err)
	}

	if err := json.Unmarshal([]byte(slots), &e.Result); err != nil {
		return nil, fmt.Errorf("decoding slots of morph %d: %w", e.ID, err)
	}
	e.CreatedAt = time.UnixMilli(created)

	return &e, nil
}
