package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"focusloop/internal/core/model"
)

// SessionRecord is one completed session.
type SessionRecord struct {
	ID           int64
	Mode         model.Mode
	Duration     time.Duration
	RewardEarned bool
	CompletedAt  time.Time
}

// History keeps a log of completed sessions in SQLite.
type History struct {
	db *sql.DB
}

// OpenHistory opens the session log at path, creating it as needed.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	history := &History{db: db}
	if err := history.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return history, nil
}

func (history *History) initTables() error {
	_, err := history.db.Exec(`
        CREATE TABLE IF NOT EXISTS session_records (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            mode TEXT NOT NULL,
            duration_seconds INTEGER NOT NULL,
            reward_earned INTEGER NOT NULL,
            completed_at DATETIME NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("create session_records table: %w", err)
	}
	return nil
}

// RecordCompletion appends a completed session to the log.
func (history *History) RecordCompletion(record SessionRecord) error {
	_, err := history.db.Exec(
		`INSERT INTO session_records (mode, duration_seconds, reward_earned, completed_at)
         VALUES (?, ?, ?, ?)`,
		string(record.Mode),
		int(record.Duration/time.Second),
		record.RewardEarned,
		record.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session record: %w", err)
	}
	return nil
}

// CompletedFocusOn counts focus sessions completed during the local day
// containing the given time.
func (history *History) CompletedFocusOn(day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var count int
	err := history.db.QueryRow(
		`SELECT COUNT(*) FROM session_records
         WHERE mode = ? AND completed_at >= ? AND completed_at < ?`,
		string(model.ModeFocus), start, end,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count focus sessions: %w", err)
	}
	return count, nil
}

// Recent returns up to limit records, newest first.
func (history *History) Recent(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := history.db.Query(
		`SELECT id, mode, duration_seconds, reward_earned, completed_at
         FROM session_records ORDER BY completed_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query session records: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var record SessionRecord
		var mode string
		var seconds int
		if err := rows.Scan(&record.ID, &mode, &seconds, &record.RewardEarned, &record.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		record.Mode = model.Mode(mode)
		record.Duration = time.Duration(seconds) * time.Second
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session records: %w", err)
	}
	return records, nil
}

// Close releases the database handle.
func (history *History) Close() error {
	return history.db.Close()
}
