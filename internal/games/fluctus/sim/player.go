package sim

import "github.com/vovakirdan/fluctus/internal/config"

// Player is the shape riding the wave. It sits on one of two rails and
// tumbles across the path when flipped.
//
// The player does not know the wave. Each tick the level hands it the path
// height and angle at its x through SetRest.
type Player struct {
	Entity

	Flipping     bool
	Up           bool
	RestY        float64 // Path height at the player's x
	RestRotation float64 // Path angle at the player's x

	railOffset float64
	flipSpeed  float64
}

// NewPlayer creates a player resting on the lower rail.
func NewPlayer(cfg config.PlayerConfig, restY, restRotation float64) *Player {
	p := &Player{
		Entity: Entity{
			Kind:     KindPlayer,
			Shape:    ShapeQuad,
			Behavior: BehaviorNone,
			Side:     SideBelow,
			Color:    ColorPlayer,
			X:        cfg.X,
			Width:    cfg.Size,
			Height:   cfg.Size,
		},
		RestY:        restY,
		RestRotation: restRotation,
		railOffset:   cfg.RailOffset(),
		flipSpeed:    cfg.FlipSpeed,
	}
	p.Y = p.Target()
	p.Rotation = restRotation
	return p
}

// Flip switches to the other rail. Ignored while a flip is in progress.
func (p *Player) Flip() {
	if p.Flipping {
		return
	}
	p.Up = !p.Up
	if p.Up {
		p.Side = SideAbove
	} else {
		p.Side = SideBelow
	}
	p.Flipping = true
}

// Target returns the y the player is heading for on its current rail.
func (p *Player) Target() float64 {
	return p.RestY + p.railOffset*p.Side.Sign()
}

// SetRest updates the path height and angle under the player.
func (p *Player) SetRest(y, rotation float64) {
	p.RestY = y
	p.RestRotation = rotation
}

// Update moves the player towards its rail. A flip travels at a fixed speed,
// stops exactly on the target and spins the shape half a turn on the way.
func (p *Player) Update(dt float64) {
	target := p.Target()

	if !p.Flipping {
		p.Y = target
		p.Rotation = p.RestRotation
		return
	}

	step := p.flipSpeed * dt
	if p.Up {
		p.Y -= step
		if p.Y <= target {
			p.Y = target
			p.Flipping = false
		}
	} else {
		p.Y += step
		if p.Y >= target {
			p.Y = target
			p.Flipping = false
		}
	}

	dist := p.Y - p.RestY
	p.Rotation = p.RestRotation + 90 + dist/p.railOffset*90
}
