package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteLedger stores records in a SQLite database.
// Rows are only ever inserted; the autoincrement id preserves insertion order.
type SQLiteLedger struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteLedger, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &SQLiteLedger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return l, nil
}

// migrate creates the database schema if it doesn't exist.
func (l *SQLiteLedger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, id ASC);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (l *SQLiteLedger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Append inserts one record.
func (l *SQLiteLedger) Append(rec Record) error {
	if err := ValidateName(rec.Name); err != nil {
		return err
	}

	_, err := l.db.Exec(
		"INSERT INTO scores (name, score) VALUES (?, ?)",
		rec.Name, rec.Score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Records returns all records in insertion order.
func (l *SQLiteLedger) Records() ([]Record, error) {
	return l.query(`SELECT name, score FROM scores ORDER BY id ASC`)
}

// TopScores ranks in SQL; ties are broken by insertion order, matching Rank.
func (l *SQLiteLedger) TopScores(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}
	return l.query(`SELECT name, score FROM scores ORDER BY score DESC, id ASC LIMIT ?`, limit)
}

// LastPlayed returns the time of the most recent record, or the zero time.
func (l *SQLiteLedger) LastPlayed() (time.Time, error) {
	var createdAt sql.NullString
	err := l.db.QueryRow("SELECT MAX(created_at) FROM scores").Scan(&createdAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("storage: cannot query last played: %w", err)
	}
	if !createdAt.Valid {
		return time.Time{}, nil
	}

	// Parse the datetime - CURRENT_TIMESTAMP is stored as text in UTC
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if parsed, err := time.Parse(layout, createdAt.String); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, nil
}

func (l *SQLiteLedger) query(q string, args ...any) ([]Record, error) {
	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Name, &r.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot iterate rows: %w", err)
	}
	return records, nil
}
