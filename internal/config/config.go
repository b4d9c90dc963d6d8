// Package config provides YAML-based game configuration loading,
// validation, hot reload and difficulty management.
package config

import (
	"errors"
	"fmt"
)

// CrossingConfig contains all configuration for the road crossing game.
type CrossingConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Lanes      []LaneConfig     `yaml:"lanes"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the vertical layout of the playfield in cells.
type FieldConfig struct {
	HUDRows        int `yaml:"hud_rows"`         // Rows reserved above the field for the score line
	SafeZoneHeight int `yaml:"safe_zone_height"` // Height of the start and goal zones
	LaneHeight     int `yaml:"lane_height"`      // Height of a single road lane
}

// PlayerConfig defines the player token.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	StepX  int `yaml:"step_x"` // Horizontal step; 0 means one player width
}

// LaneConfig defines the traffic in one lane, listed top to bottom.
type LaneConfig struct {
	Speed    float64 `yaml:"speed"`     // Cells per tick; negative moves left
	Cars     int     `yaml:"cars"`      // Number of cars spread across the lane
	CarWidth int     `yaml:"car_width"` // Car width in cells
	Jitter   int     `yaml:"jitter"`    // Max random offset from even spacing
}

// GameplayConfig defines round flow parameters.
type GameplayConfig struct {
	WinBannerTicks int `yaml:"win_banner_ticks"` // How long "YOU MADE IT!" stays up
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to lane speed factor at max difficulty
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// StepXOrWidth returns the horizontal step, falling back to the player width.
func (p PlayerConfig) StepXOrWidth() int {
	if p.StepX > 0 {
		return p.StepX
	}
	return p.Width
}

// FieldHeight returns the number of rows the playfield needs, HUD excluded.
func (c CrossingConfig) FieldHeight() int {
	return 2*c.Field.SafeZoneHeight + len(c.Lanes)*c.Field.LaneHeight
}

// MinScreenHeight returns the smallest screen height that fits the game.
func (c CrossingConfig) MinScreenHeight() int {
	return c.Field.HUDRows + c.FieldHeight()
}

// MinScreenWidth returns the smallest screen width that fits every car
// and lets the player move at least once.
func (c CrossingConfig) MinScreenWidth() int {
	w := c.Player.Width + c.Player.StepXOrWidth()
	for _, l := range c.Lanes {
		if l.CarWidth > w {
			w = l.CarWidth
		}
	}
	return w
}

// Validate checks that the configuration describes a playable field.
func (c CrossingConfig) Validate() error {
	switch {
	case c.Field.HUDRows < 0:
		return fmt.Errorf("%w: hud_rows must not be negative", ErrInvalidConfig)
	case c.Field.SafeZoneHeight <= 0:
		return fmt.Errorf("%w: safe_zone_height must be positive", ErrInvalidConfig)
	case c.Field.LaneHeight <= 0:
		return fmt.Errorf("%w: lane_height must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.StepX < 0:
		return fmt.Errorf("%w: step_x must not be negative", ErrInvalidConfig)
	case c.Player.Height > c.Field.LaneHeight || c.Player.Height > c.Field.SafeZoneHeight:
		return fmt.Errorf("%w: player height %d does not fit a lane or safe zone", ErrInvalidConfig, c.Player.Height)
	case len(c.Lanes) == 0:
		return fmt.Errorf("%w: at least one lane is required", ErrInvalidConfig)
	case c.Gameplay.WinBannerTicks < 0:
		return fmt.Errorf("%w: win_banner_ticks must not be negative", ErrInvalidConfig)
	}

	for i, l := range c.Lanes {
		if l.Cars < 0 {
			return fmt.Errorf("%w: lane %d: cars must not be negative", ErrInvalidConfig, i)
		}
		if l.CarWidth <= 0 {
			return fmt.Errorf("%w: lane %d: car_width must be positive", ErrInvalidConfig, i)
		}
		if l.Jitter < 0 {
			return fmt.Errorf("%w: lane %d: jitter must not be negative", ErrInvalidConfig, i)
		}
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// "use whatever the config file says" and is returned as-is.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
		cfg.Difficulty.Progression.Type = "score"
	}
	if cfg.Difficulty.Progression.MaxAt <= 0 {
		cfg.Difficulty.Progression.MaxAt = 20
	}
	if cfg.Difficulty.Scaling.SpeedMultiplier <= 0 {
		cfg.Difficulty.Scaling.SpeedMultiplier = 1.0
	}
}
