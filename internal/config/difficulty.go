package config

import "math"

// DifficultyCurve maps elapsed run time to level parameters.
// It is a pure function of time: the same elapsed value always yields
// the same Params, and every parameter is clamped independently.
type DifficultyCurve struct {
	cfg DifficultyConfig
}

// NewDifficultyCurve creates a new difficulty curve.
func NewDifficultyCurve(cfg DifficultyConfig) *DifficultyCurve {
	return &DifficultyCurve{cfg: cfg}
}

// SetHeadStart shifts the curve forward by the given number of seconds.
func (d *DifficultyCurve) SetHeadStart(seconds float64) {
	d.cfg.HeadStart = math.Max(0, seconds)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyCurve) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyCurve) IsEnabled() bool {
	return d.cfg.Enabled
}

// Initial returns the parameters used at the start of every run.
func (d *DifficultyCurve) Initial() Params {
	return d.cfg.Initial
}

// At returns the level parameters after elapsed seconds of play.
// Until the grace period has passed the initial values are returned unchanged.
func (d *DifficultyCurve) At(elapsed float64) Params {
	if !d.cfg.Enabled {
		return d.cfg.Initial
	}

	t := elapsed + d.cfg.HeadStart
	if t <= d.cfg.Grace {
		return d.cfg.Initial
	}
	u := t - d.cfg.Grace

	init, rate, lim := d.cfg.Initial, d.cfg.Rate, d.cfg.Limits
	return Params{
		WaveSpeed:        ramp(init.WaveSpeed, rate.WaveSpeed, u, lim.WaveSpeed),
		Amplitude:        ramp(init.Amplitude, rate.Amplitude, u, lim.Amplitude),
		Frequency:        ramp(init.Frequency, rate.Frequency, u, lim.Frequency),
		SpawnIntervalMin: ramp(init.SpawnIntervalMin, rate.SpawnIntervalMin, u, lim.SpawnIntervalMin),
		SpawnIntervalMax: ramp(init.SpawnIntervalMax, rate.SpawnIntervalMax, u, lim.SpawnIntervalMax),
	}
}

// ramp applies a linear change and clamps it to b.
func ramp(start, perSecond, u float64, b Bounds) float64 {
	return clampF(start+perSecond*u, b.Min, b.Max)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
