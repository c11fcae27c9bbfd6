package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top scores",
	Long: `Display the top scores from the ledger. The number of rows follows
highscore.leaderboard_size in the game configuration (10 by default).

Examples:
  starfall scores
  starfall scores --ledger-backend sqlite --ledger ~/.starfall/scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ledger, closeLedger, err := storage.Open(flagBackend, ledgerPath(cmd))
	if err != nil {
		return fmt.Errorf("could not open score ledger: %w", err)
	}
	defer func() { _ = closeLedger() }()

	top, err := storage.Top(ledger, cfg.HighScore.LeaderboardSize)
	if err != nil {
		return fmt.Errorf("could not read scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Starfall")
	fmt.Fprintln(out)

	if len(top) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'starfall' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %s\n", "Rank", "Name", "Score")
	fmt.Fprintf(out, "  %-4s  %-12s  %s\n", "----", "----", "-----")
	for i, rec := range top {
		fmt.Fprintf(out, "  %-4d  %-12s  %d\n", i+1, rec.Name, rec.Score)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %s %d\n", top[0].Name, top[0].Score)
	if sq, ok := ledger.(*storage.SQLiteLedger); ok {
		if last, err := sq.LastPlayed(); err == nil && !last.IsZero() {
			fmt.Fprintf(out, "Last played: %s\n", last.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
