package fluctus

import (
	"github.com/vovakirdan/fluctus/internal/config"
	"github.com/vovakirdan/fluctus/internal/games/fluctus/sim"
)

// View is the read-only part of a session the autopilot looks at.
type View interface {
	State() sim.State
	Player() (sim.Player, bool)
	Obstacles() []sim.Entity
	Params() config.Params
}

// Autopilot plays the game by watching what is coming on each side of the
// path. It flips away from spikes and towards coins when the other side is safe.
type Autopilot struct {
	// Lookahead is how far ahead, in seconds of scroll, obstacles are considered.
	Lookahead float64
	// RestartDelay is how many ticks to wait outside a run before starting one.
	RestartDelay int

	idle int
}

// NewAutopilot returns an autopilot with defaults that survive the full ramp.
func NewAutopilot() *Autopilot {
	return &Autopilot{
		Lookahead:    0.3,
		RestartDelay: 60,
	}
}

// Decide reports whether a flip should be triggered this tick.
func (a *Autopilot) Decide(v View) bool {
	if v.State() != sim.StateInGame {
		a.idle++
		if a.idle >= a.RestartDelay {
			a.idle = 0
			return true
		}
		return false
	}
	a.idle = 0

	p, ok := v.Player()
	if !ok || p.Flipping {
		return false
	}

	reach := v.Params().WaveSpeed * a.Lookahead
	var danger, coins [2]bool
	for _, e := range v.Obstacles() {
		dx := e.X - p.X
		// Anything fully behind the player is harmless.
		if dx < -(e.Width+p.Width)/2 || dx > reach+(e.Width+p.Width)/2 {
			continue
		}
		switch e.Behavior {
		case sim.BehaviorReset:
			danger[e.Side] = true
		case sim.BehaviorScore:
			coins[e.Side] = true
		}
	}

	cur := p.Side
	other := sim.SideAbove
	if cur == sim.SideAbove {
		other = sim.SideBelow
	}

	if danger[other] {
		return false
	}
	return danger[cur] || (coins[other] && !coins[cur])
}
