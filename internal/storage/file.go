package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// maxLineLen bounds a ledger line. Longer lines are malformed.
const maxLineLen = 4096

// FileLedger stores records in a text file, one "name,score" line each.
// The file is only ever appended to.
type FileLedger struct {
	path string
}

// OpenFile returns a ledger backed by the file at path. The file itself is
// created lazily on the first Append; parent directories are created now.
func OpenFile(path string) (*FileLedger, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileLedger{path: expanded}, nil
}

// Path returns the resolved file path.
func (l *FileLedger) Path() string {
	return l.path
}

// Append writes one record to the end of the file.
func (l *FileLedger) Append(rec Record) error {
	if err := ValidateName(rec.Name); err != nil {
		return err
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open ledger for append: %w", err)
	}

	line := rec.Name + "," + strconv.Itoa(rec.Score) + "\n"
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot append record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot close ledger: %w", err)
	}
	return nil
}

// Records reads every well-formed line in file order. A missing file is an
// empty ledger. Malformed lines are skipped; if the file has content but no
// line parses, ErrCorruptLedger is returned.
func (l *FileLedger) Records() ([]Record, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read ledger: %w", err)
	}
	defer f.Close()

	var (
		records []Record
		lines   int
	)
	r := bufio.NewReaderSize(f, maxLineLen)
	for {
		raw, isPrefix, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("storage: cannot read ledger: %w", err)
		}
		if isPrefix {
			// Overlong line: malformed, drop the rest of it.
			lines++
			if err := skipLine(r); err != nil {
				return nil, fmt.Errorf("storage: cannot read ledger: %w", err)
			}
			continue
		}
		text := string(raw)
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines++
		rec, ok := parseLine(text)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if lines > 0 && len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCorruptLedger, l.path)
	}
	return records, nil
}

// skipLine discards the remainder of a line that did not fit the buffer.
func skipLine(r *bufio.Reader) error {
	for {
		_, isPrefix, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !isPrefix {
			return nil
		}
	}
}

// parseLine parses "name,score". Names cannot contain commas, so any other
// field count is malformed.
func parseLine(line string) (Record, bool) {
	name, scoreText, found := strings.Cut(line, ",")
	if !found || name == "" || strings.Contains(scoreText, ",") {
		return Record{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(scoreText))
	if err != nil {
		return Record{}, false
	}
	return Record{Name: name, Score: score}, true
}
