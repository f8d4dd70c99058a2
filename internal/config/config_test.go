package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg WhackConfig
	if err := yaml.Unmarshal(GetDefaultYAML("whack"), &cfg); err != nil {
		t.Fatalf("embedded whack.yaml does not parse: %v", err)
	}
	if cfg != DefaultWhackConfig() {
		t.Errorf("embedded defaults = %+v\nhardcoded = %+v", cfg, DefaultWhackConfig())
	}
	if GetDefaultYAML("nope") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadWhackFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadWhack("")
	if err != nil {
		t.Fatalf("LoadWhack(\"\") failed: %v", err)
	}
	if cfg.Round.StartSeconds != 32 || cfg.FlashDuration() != 800*time.Millisecond {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadWhackUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "whack.yaml"), "round:\n  start_seconds: 10\n")

	cfg, err := LoadWhack("")
	if err != nil {
		t.Fatalf("LoadWhack failed: %v", err)
	}
	if cfg.Round.StartSeconds != 10 {
		t.Errorf("StartSeconds = %d, expected 10 from user config", cfg.Round.StartSeconds)
	}
}

func TestLoadWhackCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "timing:\n  flash_interval: 1.5\n")

	cfg, err := LoadWhack(path)
	if err != nil {
		t.Fatalf("LoadWhack failed: %v", err)
	}
	if cfg.FlashDuration() != 1500*time.Millisecond {
		t.Errorf("FlashDuration() = %v, expected 1.5s", cfg.FlashDuration())
	}
	// Untouched keys keep their defaults
	if cfg.RevertDuration() != 700*time.Millisecond {
		t.Errorf("RevertDuration() = %v, expected default 700ms", cfg.RevertDuration())
	}
	if cfg.Round.Prompt != "Choose the GREEN Square" {
		t.Errorf("Prompt = %q, expected default", cfg.Round.Prompt)
	}
}

func TestLoadWhackCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing file", "", "failed to read"},
		{"bad yaml", "round: [", "failed to parse"},
		{"invalid values", "timing:\n  revert_interval: 0\n", "revert_interval"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			if tc.content != "" {
				writeFile(t, path, tc.content)
			}
			_, err := LoadWhack(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WhackConfig)
		ok     bool
	}{
		{"defaults", func(*WhackConfig) {}, true},
		{"zero start seconds", func(c *WhackConfig) { c.Round.StartSeconds = 0 }, false},
		{"negative countdown_from", func(c *WhackConfig) { c.Round.CountdownFrom = -1 }, false},
		{"negative reset delay", func(c *WhackConfig) { c.Round.ResetDelay = -1 }, false},
		{"zero flash", func(c *WhackConfig) { c.Timing.FlashInterval = 0 }, false},
		{"zero floor", func(c *WhackConfig) { c.Difficulty.MinInterval = 0 }, false},
		{"zero floor with ramp disabled", func(c *WhackConfig) {
			c.Difficulty.Enabled = false
			c.Difficulty.MinInterval = 0
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultWhackConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected an error")
			}
		})
	}
}

func TestSecondsIsExact(t *testing.T) {
	if Seconds(0.8)-Seconds(0.1)-Seconds(0.1) != 600*time.Millisecond {
		t.Error("0.8 - 0.1 - 0.1 should be exactly 600ms")
	}
	if Seconds(0.05) != 50*time.Millisecond {
		t.Errorf("Seconds(0.05) = %v", Seconds(0.05))
	}
}

func TestRampApply(t *testing.T) {
	r := NewRamp(DefaultWhackConfig().Difficulty)

	if !r.Enabled() || r.Period() != 5*time.Second || r.Floor() != 50*time.Millisecond {
		t.Fatalf("unexpected ramp %+v", r)
	}

	d := 800 * time.Millisecond
	d = r.Apply(d)
	d = r.Apply(d)
	if d != 600*time.Millisecond {
		t.Errorf("two steps from 800ms = %v, expected 600ms", d)
	}

	// Clamps at the floor
	if got := r.Apply(100 * time.Millisecond); got != 50*time.Millisecond {
		t.Errorf("Apply(100ms) = %v, expected floor 50ms", got)
	}
	if got := r.Apply(50 * time.Millisecond); got != 50*time.Millisecond {
		t.Errorf("Apply(floor) = %v, expected to stay at floor", got)
	}
	// Below-floor intervals are not lengthened
	if got := r.Apply(20 * time.Millisecond); got != 20*time.Millisecond {
		t.Errorf("Apply(20ms) = %v, expected unchanged", got)
	}

	disabled := NewRamp(RampConfig{Enabled: false, Every: 5, Step: 0.1, MinInterval: 0.05})
	if disabled.Enabled() {
		t.Error("disabled ramp reports enabled")
	}
}

func TestApplyWhackPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		flash       time.Duration
		rampEnabled bool
	}{
		{DifficultyEasy, time.Second, true},
		{DifficultyNormal, 800 * time.Millisecond, true},
		{DifficultyHard, 600 * time.Millisecond, true},
		{DifficultyFixed, 800 * time.Millisecond, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultWhackConfig()
			ApplyWhackPreset(&cfg, tc.preset)
			if cfg.FlashDuration() != tc.flash {
				t.Errorf("FlashDuration() = %v, expected %v", cfg.FlashDuration(), tc.flash)
			}
			if cfg.Difficulty.Enabled != tc.rampEnabled {
				t.Errorf("ramp enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.rampEnabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard)")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
	if !IsFixedPreset(ParsePreset("fixed")) {
		t.Error("fixed preset should be fixed")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
