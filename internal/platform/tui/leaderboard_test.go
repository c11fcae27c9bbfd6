package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/starfall/internal/storage"
)

func TestLeaderboardView(t *testing.T) {
	tests := []struct {
		name    string
		records []storage.Record
		err     error
		want    []string
	}{
		{
			name: "empty",
			want: []string{"HIGH SCORES", "No scores recorded yet."},
		},
		{
			name:    "ranked rows",
			records: []storage.Record{{Name: "Bo", Score: 25}, {Name: "Ana", Score: 10}},
			want:    []string{"#1", "Bo", "25", "#2", "Ana"},
		},
		{
			name: "error line",
			err:  errors.New("storage: ledger is corrupt"),
			want: []string{"ledger is corrupt", "press enter to continue"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lb := NewLeaderboard(DefaultTheme(), 24)
			lb.SetRecords(tc.records)
			out := lb.View(80, tc.err)
			for _, w := range tc.want {
				if !strings.Contains(out, w) {
					t.Errorf("view missing %q:\n%s", w, out)
				}
			}
		})
	}
}
