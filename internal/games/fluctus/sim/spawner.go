package sim

import (
	"math/rand"

	"github.com/vovakirdan/fluctus/internal/config"
)

// Spawner produces spikes and coins off the right edge of the screen.
//
// Timing is randomized between the current difficulty bounds. Placement
// avoids long runs on one side: after an "above" spawn the next one is above
// again with probability RepeatSideHits/SideOdds, after a "below" spawn it is
// above with the complementary probability.
type Spawner struct {
	cfg        config.SpawnerConfig
	spike      config.SpikeConfig
	coin       config.CoinConfig
	spawnX     float64
	bandHeight float64

	rng    *rand.Rand
	timer  float64 // Seconds since the last spawn
	next   float64 // Seconds until the next spawn is due
	lastUp bool
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.FluctusConfig, rng *rand.Rand) *Spawner {
	s := &Spawner{
		cfg:        cfg.Spawner,
		spike:      cfg.Spike,
		coin:       cfg.Coin,
		spawnX:     cfg.Screen.Width + cfg.Spawner.SpawnMargin,
		bandHeight: cfg.Wave.BandHeight,
		rng:        rng,
	}
	s.Reset(cfg.Difficulty.Initial.SpawnIntervalMin)
	return s
}

// Reset clears the timer and side history. The first spawn is due after firstInterval.
func (s *Spawner) Reset(firstInterval float64) {
	s.timer = 0
	s.next = firstInterval
	s.lastUp = false
}

// Timer returns the seconds accumulated since the last spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// NextInterval returns the interval the timer must reach before the next spawn.
func (s *Spawner) NextInterval() float64 {
	return s.next
}

// LastUp reports whether the most recent spawn was above the path.
func (s *Spawner) LastUp() bool {
	return s.lastUp
}

// TrySpawn accumulates dt and returns a new entity when the interval has elapsed.
// The entity is placed on the path described by field.
func (s *Spawner) TrySpawn(dt float64, params config.Params, field Field) (Entity, bool) {
	s.timer += dt
	if s.timer < s.next {
		return Entity{}, false
	}

	s.timer = 0
	s.next = params.SpawnIntervalMin + s.rng.Float64()*(params.SpawnIntervalMax-params.SpawnIntervalMin)

	var e Entity
	if s.rng.Intn(s.cfg.CoinOdds) == 0 {
		e = NewCoin(s.spawnX, s.coin.Size, s.coin.SpinSpeed)
	} else {
		e = NewSpike(s.spawnX, s.spike.Size)
	}

	up := s.drawUp()
	s.lastUp = up
	if up {
		e.Side = SideAbove
	} else {
		e.Side = SideBelow
	}

	e.Rotation = field.TangentAngleAt(e.X)
	e.Y = field.HeightAt(e.X) + (s.bandHeight/2-s.cfg.EdgeInset)*e.Side.Sign()
	return e, true
}

// drawUp picks the side of the next spawn based on the previous one.
func (s *Spawner) drawUp() bool {
	hit := s.rng.Intn(s.cfg.SideOdds) < s.cfg.RepeatSideHits
	if s.lastUp {
		return hit
	}
	return !hit
}
