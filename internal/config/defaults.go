package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in road crossing configuration.
// It matches defaults/crossing.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Field: FieldConfig{
			HUDRows:        1,
			SafeZoneHeight: 2,
			LaneHeight:     2,
		},
		Player: PlayerConfig{
			Width:  3,
			Height: 1,
			StepX:  3,
		},
		Lanes: []LaneConfig{
			{Speed: 0.3, Cars: 2, CarWidth: 8, Jitter: 5},
			{Speed: -0.2, Cars: 3, CarWidth: 5, Jitter: 5},
			{Speed: 0.4, Cars: 2, CarWidth: 7, Jitter: 5},
			{Speed: -0.3, Cars: 3, CarWidth: 6, Jitter: 5},
			{Speed: 0.2, Cars: 2, CarWidth: 9, Jitter: 5},
			{Speed: -0.4, Cars: 2, CarWidth: 5, Jitter: 5},
			{Speed: 0.3, Cars: 3, CarWidth: 6, Jitter: 5},
			{Speed: -0.2, Cars: 2, CarWidth: 8, Jitter: 5},
		},
		Gameplay: GameplayConfig{
			WinBannerTicks: 45,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game.
func DefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	default:
		return nil
	}
}
