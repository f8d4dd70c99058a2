package config

import (
	_ "embed"
)

//go:embed defaults/whack.yaml
var defaultWhackYAML []byte

// DefaultWhackConfig returns the built-in Whack-a-Block configuration.
// Used as the base every YAML file is layered on, and as the fallback when
// the embedded YAML cannot be parsed.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Round: WhackRound{
			StartSeconds:  32,
			CountdownFrom: 30,
			ResetDelay:    2.0,
			Prompt:        "Choose the GREEN Square",
		},
		Timing: WhackTiming{
			FlashInterval:  0.8,
			RevertInterval: 0.7,
		},
		Difficulty: RampConfig{
			Enabled:     true,
			Every:       5.0,
			Step:        0.1,
			MinInterval: 0.05,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "whack":
		return defaultWhackYAML
	default:
		return nil
	}
}
