package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used outside the cell buffer.
type Theme struct {
	// Leaderboard
	Title         lipgloss.Style
	TableBorder   lipgloss.Style
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	Empty         lipgloss.Style
	Error         lipgloss.Style
	Hint          lipgloss.Style

	// Help bar
	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		TableBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		Empty: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
