package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/fluctus.yaml
var defaultFluctusYAML []byte

// DefaultFluctusConfig returns the default configuration.
func DefaultFluctusConfig() FluctusConfig {
	return FluctusConfig{
		Screen: ScreenConfig{
			Width:  400,
			Height: 240,
		},
		Wave: WaveConfig{
			BandHeight: 100,
			Segments:   25,
		},
		Player: PlayerConfig{
			X:          50,
			Size:       20,
			RailHeight: 50,
			FlipSpeed:  650,
		},
		Spike: SpikeConfig{
			Size: 25,
		},
		Coin: CoinConfig{
			Size:      12,
			SpinSpeed: 400,
		},
		Spawner: SpawnerConfig{
			SpawnMargin:    40,
			CullX:          -40,
			EdgeInset:      12.5,
			CoinOdds:       6,
			SideOdds:       4,
			RepeatSideHits: 1,
		},
		Scoring: ScoringConfig{
			PerSecond:  10,
			CoinPoints: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			Grace:     1,
			HeadStart: 0,
			Initial: Params{
				WaveSpeed:        250,
				Amplitude:        30,
				Frequency:        0.005,
				SpawnIntervalMin: 0.5,
				SpawnIntervalMax: 1.5,
			},
			Rate: Params{
				WaveSpeed:        4,
				Amplitude:        1.0 / 3.0,
				Frequency:        0.00005,
				SpawnIntervalMin: -1.0 / 60.0,
				SpawnIntervalMax: -1.0 / 50.0,
			},
			Limits: Limits{
				WaveSpeed:        Bounds{Min: 0, Max: 550},
				Amplitude:        Bounds{Min: 0, Max: 80},
				Frequency:        Bounds{Min: 0, Max: 0.005}, // Same as initial: frequency never grows
				SpawnIntervalMin: Bounds{Min: 0.20, Max: math.Inf(1)},
				SpawnIntervalMax: Bounds{Min: 0.5, Max: math.Inf(1)},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFluctusYAML
}
