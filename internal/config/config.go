// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// WhackConfig contains all configuration for the Whack-a-Block game.
type WhackConfig struct {
	Round      WhackRound  `yaml:"round"`
	Timing     WhackTiming `yaml:"timing"`
	Difficulty RampConfig  `yaml:"difficulty"`
}

// WhackRound defines the countdown and end-of-round parameters.
type WhackRound struct {
	StartSeconds  int     `yaml:"start_seconds"`
	CountdownFrom int     `yaml:"countdown_from"`
	ResetDelay    float64 `yaml:"reset_delay"`
	Prompt        string  `yaml:"prompt"`
}

// WhackTiming defines the spawn cycle intervals at round start.
type WhackTiming struct {
	FlashInterval  float64 `yaml:"flash_interval"`
	RevertInterval float64 `yaml:"revert_interval"`
}

// RampConfig defines how the spawn cycle speeds up over a round.
type RampConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Every       float64 `yaml:"every"`
	Step        float64 `yaml:"step"`
	MinInterval float64 `yaml:"min_interval"`
}

// FlashDuration returns the initial flash interval.
func (c WhackConfig) FlashDuration() time.Duration {
	return Seconds(c.Timing.FlashInterval)
}

// RevertDuration returns the initial revert interval.
func (c WhackConfig) RevertDuration() time.Duration {
	return Seconds(c.Timing.RevertInterval)
}

// ResetDelayDuration returns the delay between game over and the reset signal.
func (c WhackConfig) ResetDelayDuration() time.Duration {
	return Seconds(c.Round.ResetDelay)
}

// Validate reports the first invalid field, if any.
func (c WhackConfig) Validate() error {
	var errs []error
	if c.Round.StartSeconds < 1 {
		errs = append(errs, fmt.Errorf("round.start_seconds must be at least 1, got %d", c.Round.StartSeconds))
	}
	if c.Round.CountdownFrom < 0 {
		errs = append(errs, fmt.Errorf("round.countdown_from must not be negative, got %d", c.Round.CountdownFrom))
	}
	if c.Round.ResetDelay < 0 {
		errs = append(errs, fmt.Errorf("round.reset_delay must not be negative, got %g", c.Round.ResetDelay))
	}
	if c.FlashDuration() <= 0 {
		errs = append(errs, fmt.Errorf("timing.flash_interval must be positive, got %g", c.Timing.FlashInterval))
	}
	if c.RevertDuration() <= 0 {
		errs = append(errs, fmt.Errorf("timing.revert_interval must be positive, got %g", c.Timing.RevertInterval))
	}
	if c.Difficulty.Enabled {
		if Seconds(c.Difficulty.Every) <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.every must be positive, got %g", c.Difficulty.Every))
		}
		if c.Difficulty.Step < 0 {
			errs = append(errs, fmt.Errorf("difficulty.step must not be negative, got %g", c.Difficulty.Step))
		}
		if Seconds(c.Difficulty.MinInterval) <= 0 {
			errs = append(errs, fmt.Errorf("difficulty.min_interval must be positive, got %g", c.Difficulty.MinInterval))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid whack config: %w", errors.Join(errs...))
	}
	return nil
}

// Seconds converts a YAML seconds value to a duration, rounded to the
// millisecond so that repeated 0.1s steps stay exact.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s*1000)) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "" (use config as-is).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
