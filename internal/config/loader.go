package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossing loads the road crossing configuration.
// Search order: customPath -> ~/.crossroad/configs/crossing.yaml ->
// ./configs/crossing.yaml -> embedded default.
//
// A custom path that cannot be read, parsed or validated is an error.
// Broken files found by the search are skipped.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, path := range searchPaths() {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultCrossingYAML)
	if err != nil {
		return DefaultCrossingConfig(), nil
	}
	return cfg, nil
}

// Resolve returns the config file LoadCrossing would start from: the
// custom path if set, else the first search path that exists. It returns
// "" when only the embedded default is available.
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath("crossing.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "crossing.yaml"))
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (CrossingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrossingConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return CrossingConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the
// result. Fields missing from data keep their default value; a lanes list,
// when present, replaces the default lanes entirely.
func Parse(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossingConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CrossingConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a config as YAML.
func Marshal(cfg CrossingConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossroad", "configs", filename)
}
