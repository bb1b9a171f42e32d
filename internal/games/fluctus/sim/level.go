package sim

import (
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fluctus/internal/config"
)

// Level owns everything scoped to a run: the wave phase, difficulty
// parameters, the player and the obstacles. Score and game state belong to
// the Session, which is passed into Update.
type Level struct {
	cfg     config.FluctusConfig
	curve   *config.DifficultyCurve
	spawner *Spawner
	logger  *log.Logger

	params     config.Params
	waveOffset float64
	elapsed    float64

	wave      WaveVisual
	player    *Player
	obstacles []Entity // Spawn order, left to right
}

// NewLevel creates a level in its reset state.
func NewLevel(cfg config.FluctusConfig, rng *rand.Rand, logger *log.Logger) *Level {
	l := &Level{
		cfg:       cfg,
		curve:     config.NewDifficultyCurve(cfg.Difficulty),
		spawner:   NewSpawner(cfg, rng),
		logger:    logger,
		obstacles: make([]Entity, 0, 16),
		wave:      WaveVisual{Width: cfg.Screen.Width},
	}
	l.reset()
	return l
}

// Field returns the current wave path.
func (l *Level) Field() Field {
	return Field{
		Midline:   l.cfg.Screen.Midline(),
		Offset:    l.waveOffset,
		Amplitude: l.params.Amplitude,
		Frequency: l.params.Frequency,
	}
}

// reset restores run-scoped state and destroys the player and obstacles.
// The wave phase keeps running so the ribbon does not jump between states.
func (l *Level) reset() {
	l.params = l.curve.Initial()
	l.elapsed = 0
	l.spawner.Reset(l.params.SpawnIntervalMin)
	l.player = nil
	l.obstacles = l.obstacles[:0]
	l.wave.UpdateValues(l.Field(), l.cfg.Wave.BandHeight)
}

// OnStateChange resets the level and applies the setup for the new state.
func (l *Level) OnStateChange(state State) {
	l.reset()
	if state == StateInGame {
		field := l.Field()
		x := l.cfg.Player.X
		l.player = NewPlayer(l.cfg.Player, field.HeightAt(x), field.TangentAngleAt(x))
	}
}

// Update advances the level by dt seconds.
func (l *Level) Update(dt float64, s *Session) {
	l.waveOffset += l.params.WaveSpeed * dt
	l.wave.UpdateValues(l.Field(), l.cfg.Wave.BandHeight)

	if s.state != StateInGame {
		return
	}

	s.score += l.cfg.Scoring.PerSecond * dt
	l.elapsed += dt
	l.params = l.curve.At(l.elapsed)

	if l.player != nil {
		l.player.Update(dt)
		field := l.Field()
		l.player.SetRest(field.HeightAt(l.player.X), field.TangentAngleAt(l.player.X))
	}

	if e, ok := l.spawner.TrySpawn(dt, l.params, l.Field()); ok {
		l.obstacles = append(l.obstacles, e)
		s.stats.Spawns++
		l.logger.Debug("spawn", "kind", e.Kind, "side", e.Side, "y", e.Y, "next", l.spawner.NextInterval())
	}

	l.advanceObstacles(dt, s)
}

// advanceObstacles scrolls, culls and collides obstacles, newest first.
// A Reset collision ends the run and abandons the rest of the pass.
func (l *Level) advanceObstacles(dt float64, s *Session) {
	speed := l.params.WaveSpeed

	for i := len(l.obstacles) - 1; i >= 0; i-- {
		e := &l.obstacles[i]
		e.Update(dt)
		e.X -= speed * dt

		if e.X < l.cfg.Spawner.CullX {
			e.gone = true
			continue
		}

		if l.player == nil || !l.player.Collides(*e) {
			continue
		}

		switch e.Behavior {
		case BehaviorReset:
			s.RequestStateChange(StatePostGame)
			return
		case BehaviorScore:
			e.gone = true
			s.score += l.cfg.Scoring.CoinPoints
			s.stats.Coins++
			l.logger.Debug("coin collected", "score", s.CurrentScore())
		}
	}

	l.obstacles = slices.DeleteFunc(l.obstacles, func(e Entity) bool {
		return e.gone
	})
}
