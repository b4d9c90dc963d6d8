// crossroad is a lane-crossing arcade game for the terminal and the desktop.
//
// Usage:
//
//	crossroad play [game]    - Play in the terminal
//	crossroad window [game]  - Play in a desktop window
//	crossroad list           - List available games
//	crossroad config         - Print the effective config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible traffic
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--watch               - Reload the config file when it changes
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/crossroad/internal/games/crossing"
)

// defaultGame is played when no game argument is given.
const defaultGame = "crossing"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagWatch      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossroad",
	Short: "Crossroad - hop across the traffic",
	Long: `Crossroad is a lane-crossing arcade game. Steer your token from the
bottom safe zone across lanes of traffic to the goal at the top. Every
crossing scores a point; one hit ends the run.

Examples:
  crossroad play
  crossroad play --difficulty hard
  crossroad window --seed 42
  crossroad play --config ./crossing.yaml --watch
  crossroad config > ~/.crossroad/configs/crossing.yaml`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. Without --log-file it writes to
// fallback, which is io.Discard while the terminal UI owns the screen.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossroad",
		Level:           level,
	})
	return logger, closeFn, nil
}

// gameArg returns the requested game id.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
