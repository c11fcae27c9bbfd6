// starfall is a terminal space shooter: dodge and destroy asteroids, debris
// and enemy ships, then sign the local leaderboard.
//
// Usage:
//
//	starfall            - Play
//	starfall scores     - Show the top scores
//	starfall config     - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed for reproducible gameplay
//	--ledger <path>           - Set score ledger path (default: ~/.starfall/scores.txt)
//	--ledger-backend <name>   - Ledger backend: file or sqlite
//	--config <path>           - Custom game config YAML
//	--difficulty <preset>     - Difficulty preset: easy, normal, hard, fixed
//	--log <path>              - Log file (default: ~/.starfall/starfall.log)
//	--mute                    - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagLedger     string
	flagBackend    string
	flagConfig     string
	flagDifficulty string
	flagLog        string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - a space shooter in your terminal",
	Long: `Starfall is a terminal space shooter. Steer your ship, shoot down
asteroids, debris and enemy ships, and collect powerups on the way.

Controls:
  Left/A, Right/D  - Steer
  Space            - Fire
  Enter            - Confirm
  Esc              - Skip name entry
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, fewer obstacles
  normal - Default field, starts at 30% speed scaling
  hard   - 2 lives, denser field, starts at 70% speed scaling
  fixed  - No progression

Examples:
  starfall
  starfall --difficulty hard
  starfall --seed 42 --mute
  starfall scores
  starfall config > my-starfall.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLedger, "ledger", "~/.starfall/scores.txt", "Path to the score ledger")
	pf.StringVar(&flagBackend, "ledger-backend", "file", "Ledger backend: file, sqlite")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLog, "log", "~/.starfall/starfall.log", "Path to the log file")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// ledgerPath returns --ledger, switching the default file name to scores.db
// for the sqlite backend.
func ledgerPath(cmd *cobra.Command) string {
	if flagBackend == storage.BackendSQLite {
		if f := cmd.Flag("ledger"); f != nil && !f.Changed {
			return "~/.starfall/scores.db"
		}
	}
	return flagLedger
}
