package sim

import (
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fluctus/internal/config"
)

// State is the top-level game state.
type State int

const (
	StatePreGame State = iota
	StateInGame
	StatePostGame
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePreGame:
		return "PreGame"
	case StateInGame:
		return "InGame"
	case StatePostGame:
		return "PostGame"
	default:
		return "Unknown"
	}
}

// Session is the driver-facing handle on a game: it owns the game state and
// the score and drives the level. All methods must be called from one goroutine.
type Session struct {
	cfg    config.FluctusConfig
	level  *Level
	logger *log.Logger

	state State
	score float64
	runs  int
	stats Stats
}

// Stats are counters kept across all runs of a session.
type Stats struct {
	Spawns int     // Obstacles spawned
	Coins  int     // Coins collected
	Best   float64 // Highest score at the end of a run
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for state changes and spawn events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session in the PreGame state.
// The seed makes spawn timing and placement reproducible.
func NewSession(cfg config.FluctusConfig, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
		state:  StatePreGame,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.level = NewLevel(cfg, rand.New(rand.NewSource(seed)), s.logger)
	s.level.OnStateChange(StatePreGame)
	s.logger.Debug("session ready", "seed", seed, "ramp", s.level.curve.IsEnabled())
	return s
}

// Tick advances the simulation by dt seconds. A non-positive dt changes nothing.
func (s *Session) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	s.level.Update(dt, s)
}

// TriggerFlip flips the player during a run and starts a new run otherwise.
func (s *Session) TriggerFlip() {
	if s.state != StateInGame {
		s.RequestStateChange(StateInGame)
		return
	}
	if s.level.player != nil {
		s.level.player.Flip()
	}
}

// RequestStateChange moves the session to state and resets the level.
// Entering InGame starts a fresh run with a zero score.
func (s *Session) RequestStateChange(state State) {
	prev := s.state
	elapsed := s.level.elapsed
	s.state = state
	s.level.OnStateChange(state)

	switch state {
	case StateInGame:
		s.score = 0
		s.runs++
		s.logger.Info("run started", "run", s.runs)
	case StatePostGame:
		s.stats.Best = max(s.stats.Best, s.score)
		s.logger.Info("game over", "run", s.runs, "score", s.CurrentScore(), "elapsed", elapsed)
	default:
		s.logger.Debug("state change", "from", prev, "to", state)
	}
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Score returns the exact accumulated score.
func (s *Session) Score() float64 {
	return s.score
}

// CurrentScore returns the score truncated for display.
func (s *Session) CurrentScore() int {
	return int(s.score)
}

// Runs returns how many runs have been started.
func (s *Session) Runs() int {
	return s.runs
}

// Stats returns the counters accumulated since the session was created.
func (s *Session) Stats() Stats {
	return s.stats
}

// Elapsed returns the seconds played in the current run.
func (s *Session) Elapsed() float64 {
	return s.level.elapsed
}

// Params returns the current difficulty parameters.
func (s *Session) Params() config.Params {
	return s.level.params
}

// Field returns the current wave path.
func (s *Session) Field() Field {
	return s.level.Field()
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FluctusConfig {
	return s.cfg
}

// Player returns a copy of the player, if one exists.
func (s *Session) Player() (Player, bool) {
	if s.level.player == nil {
		return Player{}, false
	}
	return *s.level.player, true
}

// Obstacles returns a copy of the obstacles in spawn order.
func (s *Session) Obstacles() []Entity {
	return slices.Clone(s.level.obstacles)
}

// Renderables returns the draw list: the wave ribbon, then the player if
// present, then obstacles in spawn order.
func (s *Session) Renderables() []Renderable {
	out := make([]Renderable, 0, len(s.level.obstacles)+2)
	out = append(out, s.level.wave.renderable())
	if s.level.player != nil {
		out = append(out, s.level.player.renderable())
	}
	for _, e := range s.level.obstacles {
		out = append(out, e.renderable())
	}
	return out
}
