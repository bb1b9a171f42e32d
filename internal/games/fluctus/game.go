// Package fluctus adapts the wave-rider simulation to the arcade platform:
// it maps input frames onto session calls and rasterizes the draw list into
// a terminal screen buffer.
package fluctus

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fluctus/internal/config"
	"github.com/vovakirdan/fluctus/internal/core"
	"github.com/vovakirdan/fluctus/internal/games/fluctus/sim"
)

// Game implements the FLUCTUS game loop on top of a sim.Session.
type Game struct {
	cfg       config.FluctusConfig
	runtime   core.RuntimeConfig
	logger    *log.Logger
	session   *sim.Session
	autopilot *Autopilot
	fixedStep float64 // Seconds per tick; 0 means derive from the tick rate
	paused    bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger handed to the session.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithAutopilot lets pilot trigger flips in addition to player input.
func WithAutopilot(pilot *Autopilot) Option {
	return func(g *Game) {
		g.autopilot = pilot
	}
}

// WithFixedStep makes every tick advance the simulation by dt seconds
// regardless of the tick rate.
func WithFixedStep(dt float64) Option {
	return func(g *Game) {
		g.fixedStep = dt
	}
}

// New creates a game using cfg. Call Reset before stepping.
func New(cfg config.FluctusConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fluctus"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "FLUCTUS"
}

// Reset discards the current session and starts a new one in PreGame.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.session = sim.NewSession(g.cfg, runtime.Seed, sim.WithLogger(g.logger))
	g.logger.Debug("session created", "seed", runtime.Seed, "dt", g.step())
}

// Session exposes the underlying simulation.
func (g *Game) Session() *sim.Session {
	return g.session
}

func (g *Game) step() float64 {
	if g.fixedStep > 0 {
		return g.fixedStep
	}
	return g.runtime.TickSeconds()
}

// Step applies one frame of input and advances the simulation by one tick.
// While paused the simulation is ticked with a zero step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	inGame := g.session.State() == sim.StateInGame
	if in.Has(core.ActionPause) && inGame {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}

	if !g.paused {
		flip := in.Has(core.ActionFlip) || (!inGame && in.Has(core.ActionConfirm))
		if !flip && g.autopilot != nil {
			flip = g.autopilot.Decide(g.session)
		}
		if flip {
			g.session.TriggerFlip()
		}
	}

	dt := g.step()
	if g.paused {
		dt = 0
	}
	g.session.Tick(dt)

	if g.session.State() != sim.StateInGame {
		g.paused = false
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: sim.StatePreGame.String()}
	}
	return core.GameState{
		Score:    g.session.CurrentScore(),
		Phase:    g.session.State().String(),
		GameOver: g.session.State() == sim.StatePostGame,
		Paused:   g.paused,
	}
}
