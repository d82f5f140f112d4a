package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"diarist/internal/domain"
	"diarist/internal/ports"

	_ "modernc.org/sqlite"
)

// History implements ports.History using SQLite. The database lives
// inside the vault under .diarist/history.db so it travels with the
// notes it describes.
type History struct {
	db *sql.DB
}

var _ ports.History = (*History)(nil)

// DatabasePath returns the history database location for a vault.
func DatabasePath(vaultPath string) string {
	return filepath.Join(vaultPath, ".diarist", "history.db")
}

// OpenHistory opens (and if needed creates) the vault's history
// database.
func OpenHistory(vaultPath string) (*History, error) {
	dbPath := DatabasePath(vaultPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	// Performance pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS writes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			path TEXT NOT NULL,
			created INTEGER NOT NULL,
			written_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_writes_written_at ON writes(written_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up history database: %w", err)
	}

	return &History{db: db}, nil
}

// Record stores one page write.
func (h *History) Record(write domain.PageWrite) error {
	created := 0
	if write.Created {
		created = 1
	}
	_, err := h.db.Exec(
		`INSERT INTO writes (name, path, created, written_at) VALUES (?, ?, ?, ?)`,
		write.Name, write.Path, created, write.WrittenAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording write: %w", err)
	}
	return nil
}

// Recent returns up to limit writes, newest first.
func (h *History) Recent(limit int) ([]domain.PageWrite, error) {
	rows, err := h.db.Query(
		`SELECT name, path, created, written_at FROM writes ORDER BY written_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var writes []domain.PageWrite
	for rows.Next() {
		var w domain.PageWrite
		var created int
		var writtenAt int64
		if err := rows.Scan(&w.Name, &w.Path, &created, &writtenAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		w.Created = created != 0
		w.WrittenAt = time.Unix(writtenAt, 0)
		writes = append(writes, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history rows: %w", err)
	}
	return writes, nil
}

// Close releases the database handle.
func (h *History) Close() error {
	return h.db.Close()
}
