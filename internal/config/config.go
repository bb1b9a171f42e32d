// Package config provides YAML-based game configuration loading and
// difficulty management for FLUCTUS.
package config

import (
	"errors"
	"fmt"
	"math"
)

// FluctusConfig contains all tuning for the game. Distances are in world
// units (the playfield is Screen.Width x Screen.Height), times in seconds.
type FluctusConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Wave       WaveConfig       `yaml:"wave"`
	Player     PlayerConfig     `yaml:"player"`
	Spike      SpikeConfig      `yaml:"spike"`
	Coin       CoinConfig       `yaml:"coin"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig defines the size of the simulated playfield.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Midline returns the vertical center the wave oscillates around.
func (s ScreenConfig) Midline() float64 {
	return s.Height / 2
}

// WaveConfig defines the wave ribbon.
type WaveConfig struct {
	BandHeight float64 `yaml:"band_height"` // Ribbon thickness
	Segments   int     `yaml:"segments"`    // Ribbon segments across the screen (render only)
}

// PlayerConfig defines the player shape and flip animation.
type PlayerConfig struct {
	X          float64 `yaml:"x"`           // Fixed horizontal position
	Size       float64 `yaml:"size"`        // Width and height
	RailHeight float64 `yaml:"rail_height"` // Distance from the path to the outer edge of a rail
	FlipSpeed  float64 `yaml:"flip_speed"`  // Vertical speed while flipping (units/s)
}

// RailOffset returns the distance between the path and the player center on a rail.
func (p PlayerConfig) RailOffset() float64 {
	return p.RailHeight - p.Size/2
}

// SpikeConfig defines the Reset obstacle.
type SpikeConfig struct {
	Size float64 `yaml:"size"`
}

// CoinConfig defines the Score pickup.
type CoinConfig struct {
	Size      float64 `yaml:"size"`
	SpinSpeed float64 `yaml:"spin_speed"` // Degrees per second
}

// SpawnerConfig defines where and how obstacles appear.
type SpawnerConfig struct {
	SpawnMargin    float64 `yaml:"spawn_margin"`     // Spawn x = screen width + margin
	CullX          float64 `yaml:"cull_x"`           // Entities left of this x are removed
	EdgeInset      float64 `yaml:"edge_inset"`       // Pulls spawns from the band edge towards the path
	CoinOdds       int     `yaml:"coin_odds"`        // 1-in-N chance of a coin instead of a spike
	SideOdds       int     `yaml:"side_odds"`        // Denominator for the side draw
	RepeatSideHits int     `yaml:"repeat_side_hits"` // Outcomes (of SideOdds) that repeat an "up" spawn
}

// ScoringConfig defines how points are earned.
type ScoringConfig struct {
	PerSecond  float64 `yaml:"per_second"`  // Survival points per second
	CoinPoints float64 `yaml:"coin_points"` // Flat bonus per coin
}

// Params is a snapshot of the difficulty-driven level parameters.
type Params struct {
	WaveSpeed        float64 `yaml:"wave_speed"`
	Amplitude        float64 `yaml:"amplitude"`
	Frequency        float64 `yaml:"frequency"`
	SpawnIntervalMin float64 `yaml:"spawn_interval_min"`
	SpawnIntervalMax float64 `yaml:"spawn_interval_max"`
}

// Bounds is a closed clamp range. Max may be .inf in YAML.
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Limits holds one clamp range per parameter.
type Limits struct {
	WaveSpeed        Bounds `yaml:"wave_speed"`
	Amplitude        Bounds `yaml:"amplitude"`
	Frequency        Bounds `yaml:"frequency"`
	SpawnIntervalMin Bounds `yaml:"spawn_interval_min"`
	SpawnIntervalMax Bounds `yaml:"spawn_interval_max"`
}

// DifficultyConfig defines the time-based difficulty ramp.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Grace     float64 `yaml:"grace"`      // Seconds before the ramp starts
	HeadStart float64 `yaml:"head_start"` // Seconds added to the run clock by presets
	Initial   Params  `yaml:"initial"`
	Rate      Params  `yaml:"rate"` // Change per second once the ramp runs
	Limits    Limits  `yaml:"limits"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a CLI string into a preset. Empty means "use config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, s)
	}
}

// HeadStartForPreset returns how far into the ramp a preset starts, in seconds.
func HeadStartForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 20
	case DifficultyHard:
		return 45
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *FluctusConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.HeadStart = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.HeadStart = HeadStartForPreset(preset)
	}
}

// Validate checks the configuration for values the simulation cannot run with.
func Validate(cfg FluctusConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.Screen.Width > 0 && cfg.Screen.Height > 0,
		"screen size must be positive, got %gx%g", cfg.Screen.Width, cfg.Screen.Height)
	check(cfg.Wave.BandHeight > 0, "wave.band_height must be positive, got %g", cfg.Wave.BandHeight)
	check(cfg.Wave.Segments > 0, "wave.segments must be positive, got %d", cfg.Wave.Segments)
	check(cfg.Player.Size > 0, "player.size must be positive, got %g", cfg.Player.Size)
	check(cfg.Player.RailOffset() > 0,
		"player.rail_height (%g) must exceed half the player size", cfg.Player.RailHeight)
	check(cfg.Player.FlipSpeed > 0, "player.flip_speed must be positive, got %g", cfg.Player.FlipSpeed)
	check(cfg.Spike.Size > 0, "spike.size must be positive, got %g", cfg.Spike.Size)
	check(cfg.Coin.Size > 0, "coin.size must be positive, got %g", cfg.Coin.Size)
	check(cfg.Spawner.CoinOdds > 0, "spawner.coin_odds must be positive, got %d", cfg.Spawner.CoinOdds)
	check(cfg.Spawner.SideOdds > 0, "spawner.side_odds must be positive, got %d", cfg.Spawner.SideOdds)
	check(cfg.Spawner.RepeatSideHits >= 0 && cfg.Spawner.RepeatSideHits <= cfg.Spawner.SideOdds,
		"spawner.repeat_side_hits must be within [0, %d], got %d", cfg.Spawner.SideOdds, cfg.Spawner.RepeatSideHits)

	d := cfg.Difficulty
	check(d.Grace >= 0, "difficulty.grace must not be negative, got %g", d.Grace)
	check(d.HeadStart >= 0, "difficulty.head_start must not be negative, got %g", d.HeadStart)
	check(d.Initial.WaveSpeed >= 0, "difficulty.initial.wave_speed must not be negative")
	check(d.Initial.SpawnIntervalMin > 0, "difficulty.initial.spawn_interval_min must be positive")
	check(d.Initial.SpawnIntervalMin <= d.Initial.SpawnIntervalMax,
		"difficulty.initial spawn interval is inverted: [%g, %g]",
		d.Initial.SpawnIntervalMin, d.Initial.SpawnIntervalMax)
	check(d.Limits.SpawnIntervalMin.Min > 0, "difficulty.limits.spawn_interval_min.min must be positive")
	check(d.Limits.SpawnIntervalMin.Min <= d.Limits.SpawnIntervalMax.Min,
		"difficulty.limits allow the spawn interval to invert")
	for name, b := range map[string]Bounds{
		"wave_speed":         d.Limits.WaveSpeed,
		"amplitude":          d.Limits.Amplitude,
		"frequency":          d.Limits.Frequency,
		"spawn_interval_min": d.Limits.SpawnIntervalMin,
		"spawn_interval_max": d.Limits.SpawnIntervalMax,
	} {
		check(!math.IsNaN(b.Min) && !math.IsNaN(b.Max) && b.Min <= b.Max,
			"difficulty.limits.%s is empty: [%g, %g]", name, b.Min, b.Max)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
