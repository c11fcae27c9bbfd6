package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/game"
	"github.com/vovakirdan/starfall/internal/platform/audio"
	"github.com/vovakirdan/starfall/internal/platform/tui"
	"github.com/vovakirdan/starfall/internal/storage"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	ledger, closeLedger, err := storage.Open(flagBackend, ledgerPath(cmd))
	if err != nil {
		return fmt.Errorf("could not open score ledger: %w", err)
	}
	defer func() {
		if err := closeLedger(); err != nil {
			logger.Error("close ledger", "err", err)
		}
	}()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	sink, closeAudio := audio.New(flagMute, logger)
	defer closeAudio()

	logger.Info("starting",
		"seed", seed,
		"fps", flagFPS,
		"backend", flagBackend,
		"difficulty", flagDifficulty,
	)
	session := game.New(cfg, rt, game.Deps{
		Ledger: ledger,
		Audio:  sink,
		Logger: logger,
	})

	if err := tui.Run(session, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadConfig resolves the game configuration from --config and --difficulty.
func loadConfig() (config.ShooterConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		return config.ShooterConfig{}, err
	}
	config.ApplyShooterPreset(&cfg, preset)
	return cfg, nil
}

// openLog opens the log file. The UI owns the terminal, so nothing is
// written to stderr while the game runs.
func openLog(path string) (*log.Logger, func(), error) {
	expanded, err := storage.ExpandPath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(expanded, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304 -- user-chosen log path
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfall",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}
