package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// SQLite driver
	_ "modernc.org/sqlite"

	"calcbox/internal/domain"
)

// DefaultHistoryLimit caps RecentHistory when the caller passes limit <= 0.
const DefaultHistoryLimit = 20

const historySchema = `
CREATE TABLE IF NOT EXISTS history (
	id TEXT PRIMARY KEY,
	tool TEXT NOT NULL,
	args TEXT NOT NULL,
	display TEXT NOT NULL DEFAULT '',
	error_kind TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);
`

// HistoryDB records tool runs in a SQLite database.
type HistoryDB struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

var _ domain.HistoryStore = (*HistoryDB)(nil)

// OpenHistoryDB opens the history database at path, creating it if necessary.
func OpenHistoryDB(path string) (*HistoryDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &HistoryDB{db: db, path: path, now: time.Now}, nil
}

// Close closes the database connection.
func (h *HistoryDB) Close() error { return h.db.Close() }

// Path returns the database file path.
func (h *HistoryDB) Path() string { return h.path }

// AppendHistory stores entry, assigning a UUID and timestamp when unset.
func (h *HistoryDB) AppendHistory(ctx context.Context, entry domain.HistoryEntry) (domain.HistoryEntry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = h.now().UTC()
	}
	if entry.Args == nil {
		entry.Args = map[string]string{}
	}
	args, err := json.Marshal(entry.Args)
	if err != nil {
		return domain.HistoryEntry{}, err
	}

	_, err = h.db.ExecContext(ctx,
		`INSERT INTO history (id, tool, args, display, error_kind, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Tool, string(args), entry.Display, entry.ErrorKind, entry.Message,
		entry.CreatedAt.UnixNano(),
	)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("appending history: %w", err)
	}
	return entry, nil
}

// RecentHistory returns up to limit entries, newest first.
func (h *HistoryDB) RecentHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, tool, args, display, error_kind, message, created_at
		 FROM history ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var out []domain.HistoryEntry
	for rows.Next() {
		var (
			e       domain.HistoryEntry
			args    string
			created int64
		)
		if err := rows.Scan(&e.ID, &e.Tool, &args, &e.Display, &e.ErrorKind, &e.Message, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(args), &e.Args); err != nil {
			return nil, fmt.Errorf("history %s: %w", e.ID, err)
		}
		e.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// ClearHistory deletes every entry.
func (h *HistoryDB) ClearHistory(ctx context.Context) error {
	if _, err := h.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
