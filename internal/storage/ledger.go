// Package storage persists high-score records.
//
// Two append-only backends implement Ledger: a plain text file with one
// "name,score" record per line, and a SQLite database using the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrInvalidName is returned when a name is empty or cannot be stored.
	ErrInvalidName = errors.New("storage: invalid name")

	// ErrCorruptLedger is returned when a non-empty ledger has no readable records.
	ErrCorruptLedger = errors.New("storage: ledger has no readable records")
)

// Record is a single high-score entry.
type Record struct {
	Name  string
	Score int
}

// Ledger is an append-only store of score records.
// Records returns entries in insertion order.
type Ledger interface {
	Append(rec Record) error
	Records() ([]Record, error)
}

// ValidateName checks that a name can be written as a record.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.ContainsAny(name, ",\r\n") {
		return fmt.Errorf("%w: %q contains a comma or newline", ErrInvalidName, name)
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("%w: %q has leading or trailing spaces", ErrInvalidName, name)
	}
	return nil
}

// Rank orders records by score descending. Ties keep insertion order.
// At most limit records are returned; limit <= 0 returns all of them.
func Rank(records []Record, limit int) []Record {
	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// HighScore returns the first record holding the maximum score.
// ok is false when there are no records; the zero Record then has score 0.
func HighScore(records []Record) (best Record, ok bool) {
	for i, r := range records {
		if i == 0 || r.Score > best.Score {
			best = r
		}
	}
	return best, len(records) > 0
}

// Ranker is implemented by ledgers that can rank without reading every record.
type Ranker interface {
	TopScores(limit int) ([]Record, error)
}

// Top returns the ledger's ranked top entries.
func Top(l Ledger, limit int) ([]Record, error) {
	if r, ok := l.(Ranker); ok && limit > 0 {
		return r.TopScores(limit)
	}
	records, err := l.Records()
	if err != nil {
		return nil, err
	}
	return Rank(records, limit), nil
}

// ExpandPath expands a leading ~ and creates parent directories.
func ExpandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open opens a ledger with the named backend. The returned close function
// must be called when the ledger is no longer needed.
func Open(backend, path string) (Ledger, func() error, error) {
	switch backend {
	case BackendFile, "":
		l, err := OpenFile(path)
		if err != nil {
			return nil, nil, err
		}
		return l, func() error { return nil }, nil
	case BackendSQLite:
		l, err := OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return l, l.Close, nil
	default:
		return nil, nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
