package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starfall/internal/storage"
)

// Leaderboard layout constants
const (
	rankWidth  = 6
	nameWidth  = 14
	scoreWidth = 8
)

// Leaderboard renders ranked records as a table.
type Leaderboard struct {
	table table.Model
	theme Theme
	rows  int
}

// NewLeaderboard creates an empty leaderboard sized for height rows.
func NewLeaderboard(theme Theme, height int) *Leaderboard {
	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreWidth},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)), // Leave room for the title, hint and help
	)

	s := table.DefaultStyles()
	s.Header = theme.TableHeader
	s.Selected = theme.TableSelected
	t.SetStyles(s)

	return &Leaderboard{table: t, theme: theme}
}

// SetRecords replaces the table rows with already ranked records.
func (l *Leaderboard) SetRecords(records []storage.Record) {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Name,
			fmt.Sprintf("%d", r.Score),
		}
	}
	l.table.SetRows(rows)
	l.table.GotoTop()
	l.rows = len(rows)
}

// View renders the leaderboard centered in width.
func (l *Leaderboard) View(width int, err error) string {
	var b strings.Builder

	b.WriteString(centerText(l.theme.Title.Render("HIGH SCORES"), width))
	b.WriteString("\n\n")

	content := l.theme.Empty.Render("No scores recorded yet.")
	if l.rows > 0 {
		content = l.table.View()
	}
	b.WriteString(centerText(l.theme.TableBorder.Render(content), width))
	b.WriteString("\n")

	if err != nil {
		b.WriteString("\n")
		b.WriteString(centerText(l.theme.Error.Render(err.Error()), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(l.theme.Hint.Render("press enter to continue"), width))
	return b.String()
}

// centerText centers every line of a possibly styled block in width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
