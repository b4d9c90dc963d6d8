package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossroad/internal/core"
	"github.com/vovakirdan/crossroad/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play a game in a desktop window",
	Long: `Start playing in an 800x600 window. The game defaults to "crossing".

Controls:
  Arrows/WASD - Move one step
  P           - Pause
  R           - Restart (after game over)
  Esc/Q       - Quit

Logs go to stderr unless --log-file is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := prepareGame(gameArg(args))
	if err != nil {
		return err
	}

	opts := window.Options{Logger: logger}
	if flagWatch {
		w, err := startWatcher(logger)
		if err != nil {
			return err
		}
		defer w.Close() //nolint:errcheck // Best-effort close on exit
		opts.Reloads = w.Updates
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := window.Run(game, cfg, opts); err != nil {
		logger.Error("window failed", "error", err)
		return err
	}
	return nil
}
