package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossroad/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config as YAML",
	Long: `Prints the configuration a game would start with, after the
--config file (or the search path) and the --difficulty preset are applied.
The output is a valid config file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// effectiveConfig loads the config the way the game does.
func effectiveConfig() (config.CrossingConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CrossingConfig{}, err
	}
	cfg, err := config.LoadCrossing(flagConfig)
	if err != nil {
		return config.CrossingConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
