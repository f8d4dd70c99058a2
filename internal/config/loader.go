package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWhack loads Whack-a-Block configuration.
// Search order: customPath -> ~/.arcade/configs/whack.yaml -> ./configs/whack.yaml -> embedded default.
// Files are layered over DefaultWhackConfig, so they only need the keys they change.
func LoadWhack(customPath string) (WhackConfig, error) {
	// An explicit path must load, anything else falls through silently
	if customPath != "" {
		cfg, err := parseWhack(customPath)
		if err != nil {
			return DefaultWhackConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("whack.yaml"); userCfgPath != "" {
		if cfg, err := parseWhack(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseWhack(filepath.Join("configs", "whack.yaml")); err == nil {
		return cfg, nil
	}

	cfg := DefaultWhackConfig()
	if err := yaml.Unmarshal(defaultWhackYAML, &cfg); err != nil {
		return DefaultWhackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseWhack(path string) (WhackConfig, error) {
	cfg := DefaultWhackConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyWhackPreset modifies the config based on a difficulty preset.
func ApplyWhackPreset(cfg *WhackConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Timing.FlashInterval = 1.0
		cfg.Timing.RevertInterval = 0.9
		cfg.Difficulty.Step = 0.05
	case DifficultyNormal:
		d := DefaultWhackConfig()
		cfg.Difficulty.Enabled = true
		cfg.Timing = d.Timing
		cfg.Difficulty.Step = d.Difficulty.Step
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Timing.FlashInterval = 0.6
		cfg.Timing.RevertInterval = 0.5
		cfg.Difficulty.Step = 0.1
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
