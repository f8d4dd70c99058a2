package config

import "time"

// Ramp shortens spawn intervals on a fixed period.
// Each application subtracts Step and clamps at MinInterval, so intervals
// never reach zero or go negative.
type Ramp struct {
	enabled bool
	period  time.Duration
	step    time.Duration
	floor   time.Duration
}

// NewRamp creates a ramp from config.
func NewRamp(cfg RampConfig) Ramp {
	return Ramp{
		enabled: cfg.Enabled,
		period:  Seconds(cfg.Every),
		step:    Seconds(cfg.Step),
		floor:   Seconds(cfg.MinInterval),
	}
}

// Enabled returns whether the ramp should run at all.
func (r Ramp) Enabled() bool {
	return r.enabled && r.period > 0 && r.step > 0
}

// Period returns how often the ramp applies.
func (r Ramp) Period() time.Duration {
	return r.period
}

// Floor returns the minimum interval.
func (r Ramp) Floor() time.Duration {
	return r.floor
}

// Apply returns the interval after one ramp step.
func (r Ramp) Apply(d time.Duration) time.Duration {
	next := d - r.step
	if next < r.floor {
		next = r.floor
	}
	// Never lengthen an interval that started below the floor
	if next > d {
		return d
	}
	return next
}
