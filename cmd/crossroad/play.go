package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossroad/internal/config"
	"github.com/vovakirdan/crossroad/internal/core"
	"github.com/vovakirdan/crossroad/internal/games/crossing"
	"github.com/vovakirdan/crossroad/internal/platform/tui"
	"github.com/vovakirdan/crossroad/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing in the terminal. The game defaults to "crossing".

Controls:
  Arrows/WASD - Move one step
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at base speed, traffic speeds up with your score
  normal - Start 30% faster, speeds up with your score
  hard   - Start 70% faster, speeds up with your score
  fixed  - Constant speeds, as configured

Examples:
  crossroad play
  crossroad play crossing --difficulty hard
  crossroad play --seed 42 --log-file crossroad.log --log-level debug
  crossroad play --config ./crossing.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	game, err := prepareGame(gameArg(args))
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{Logger: logger}
	if flagWatch {
		w, err := startWatcher(logger)
		if err != nil {
			return err
		}
		defer w.Close() //nolint:errcheck // Best-effort close on exit
		opts.Reloads = w.Updates
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		logger.Error("terminal UI failed", "error", err)
		return err
	}
	return nil
}

// prepareGame validates the session flags and creates the game.
// Bad flags fail here rather than silently falling back mid-game.
func prepareGame(gameID string) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q, run 'crossroad list' to see available games", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return nil, err
	}
	if flagConfig != "" {
		if _, err := config.LoadFile(flagConfig); err != nil {
			return nil, err
		}
	}
	if flagFPS <= 0 {
		return nil, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	crossing.SetConfigPath(flagConfig)
	crossing.SetDifficultyPreset(flagDifficulty)

	return registry.Create(gameID)
}

// startWatcher watches the config file the game loads from.
func startWatcher(logger *log.Logger) (*config.Watcher, error) {
	path := config.Resolve(flagConfig)
	if path == "" {
		return nil, fmt.Errorf("--watch needs a config file; pass --config or create one with 'crossroad config'")
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	logger.Info("watching config", "path", w.Path())
	return w, nil
}
