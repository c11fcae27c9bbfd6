package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newSQLiteLedger(t *testing.T) *SQLiteLedger {
	t.Helper()
	l, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestSQLiteOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "test.db")

	l, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer l.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteAppendAndRecords(t *testing.T) {
	l := newSQLiteLedger(t)

	for _, r := range []Record{{"Ana", 10}, {"Bo", 25}, {"Cy", 10}} {
		if err := l.Append(r); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	records, err := l.Records()
	if err != nil {
		t.Fatalf("Records() failed: %v", err)
	}
	want := []Record{{"Ana", 10}, {"Bo", 25}, {"Cy", 10}}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("Records() = %v, expected insertion order %v", records, want)
	}
}

func TestSQLiteTopScoresMatchesRank(t *testing.T) {
	l := newSQLiteLedger(t)

	for i := 0; i < 12; i++ {
		if err := l.Append(Record{Name: "p", Score: i % 4}); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	records, err := l.Records()
	if err != nil {
		t.Fatal(err)
	}
	top, err := Top(l, 10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if !reflect.DeepEqual(top, Rank(records, 10)) {
		t.Errorf("SQL ranking %v differs from Rank %v", top, Rank(records, 10))
	}
}

func TestSQLiteRejectsInvalidName(t *testing.T) {
	l := newSQLiteLedger(t)

	if err := l.Append(Record{"", 3}); !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
}

func TestSQLiteLastPlayed(t *testing.T) {
	l := newSQLiteLedger(t)

	last, err := l.LastPlayed()
	if err != nil {
		t.Fatalf("LastPlayed() failed: %v", err)
	}
	if !last.IsZero() {
		t.Errorf("empty ledger should report zero time, got %v", last)
	}

	if err := l.Append(Record{"Ana", 1}); err != nil {
		t.Fatal(err)
	}
	last, err = l.LastPlayed()
	if err != nil {
		t.Fatalf("LastPlayed() failed: %v", err)
	}
	if last.IsZero() {
		t.Error("LastPlayed should be set after an append")
	}
}

func TestOpenSQLiteBackend(t *testing.T) {
	l, closeFn, err := Open(BackendSQLite, filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer closeFn()

	if _, ok := l.(*SQLiteLedger); !ok {
		t.Errorf("expected *SQLiteLedger, got %T", l)
	}
}
