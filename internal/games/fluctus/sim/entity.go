package sim

import (
	"github.com/vovakirdan/fluctus/internal/core"
)

// Kind identifies an entity variant.
type Kind int

const (
	KindWave Kind = iota
	KindPlayer
	KindSpike
	KindCoin
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindWave:
		return "wave"
	case KindPlayer:
		return "player"
	case KindSpike:
		return "spike"
	case KindCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Shape selects how the renderer draws an entity. It is fixed at construction.
type Shape int

const (
	ShapeQuad Shape = iota
	ShapeTriangle
	ShapeWaveRibbon
)

// Side says which rail of the path an entity sits on.
type Side int

const (
	SideBelow Side = iota
	SideAbove
)

// Sign returns the direction of the side in screen space (y grows downwards).
func (s Side) Sign() float64 {
	if s == SideAbove {
		return -1
	}
	return 1
}

// String returns "above" or "below".
func (s Side) String() string {
	if s == SideAbove {
		return "above"
	}
	return "below"
}

// Behavior is what happens when the player touches an entity.
type Behavior int

const (
	BehaviorNone  Behavior = iota // Not collidable
	BehaviorReset                 // Ends the run
	BehaviorScore                 // Consumed for bonus points
)

// Entity colors.
var (
	ColorPlayer = core.RGB(0xA4, 0xDF, 0xE0)
	ColorSpike  = core.RGB(0xEB, 0xE1, 0xE1)
	ColorCoin   = core.RGB(0xFF, 0xED, 0x6A)
	ColorWave   = core.RGB(0x6C, 0x6C, 0x6C)
)

// Entity is a positioned, sized object. Sizes are always positive;
// orientation relative to the path is carried by Side.
type Entity struct {
	Kind     Kind
	Shape    Shape
	Behavior Behavior
	Side     Side
	Color    core.Color
	X, Y     float64 // Center
	Width    float64
	Height   float64
	Rotation float64 // Degrees

	spin float64 // Degrees per second of decorative rotation
	gone bool    // Marked for removal during an obstacle pass
}

// NewSpike creates a spike at x. Position on the path is set by the spawner.
func NewSpike(x, size float64) Entity {
	return Entity{
		Kind:     KindSpike,
		Shape:    ShapeTriangle,
		Behavior: BehaviorReset,
		Color:    ColorSpike,
		X:        x,
		Width:    size,
		Height:   size,
	}
}

// NewCoin creates a spinning coin at x.
func NewCoin(x, size, spin float64) Entity {
	return Entity{
		Kind:     KindCoin,
		Shape:    ShapeQuad,
		Behavior: BehaviorScore,
		Color:    ColorCoin,
		X:        x,
		Width:    size,
		Height:   size,
		spin:     spin,
	}
}

// Update advances the entity's own animation.
func (e *Entity) Update(dt float64) {
	e.Rotation += e.spin * dt
}

// Box returns the collision box. Rotation is ignored.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Width, e.Height)
}

// Collides reports whether two entities overlap.
func (e Entity) Collides(other Entity) bool {
	return e.Box().Overlaps(other.Box())
}

// WaveVisual is the non-colliding ribbon drawn along the path.
type WaveVisual struct {
	Field      Field
	BandHeight float64
	Width      float64
}

// UpdateValues replaces the wave parameters shown by the ribbon.
func (w *WaveVisual) UpdateValues(f Field, bandHeight float64) {
	w.Field = f
	w.BandHeight = bandHeight
}

// Renderable is a value snapshot of one entity for the external renderer.
type Renderable struct {
	Kind     Kind
	Shape    Shape
	Side     Side
	Color    core.Color
	X, Y     float64
	Width    float64
	Height   float64
	Rotation float64

	// Set for ShapeWaveRibbon only.
	Wave       Field
	BandHeight float64
}

func (e Entity) renderable() Renderable {
	return Renderable{
		Kind:     e.Kind,
		Shape:    e.Shape,
		Side:     e.Side,
		Color:    e.Color,
		X:        e.X,
		Y:        e.Y,
		Width:    e.Width,
		Height:   e.Height,
		Rotation: e.Rotation,
	}
}

func (w WaveVisual) renderable() Renderable {
	return Renderable{
		Kind:       KindWave,
		Shape:      ShapeWaveRibbon,
		Color:      ColorWave,
		Y:          w.Field.Midline,
		Width:      w.Width,
		Height:     w.BandHeight,
		Wave:       w.Field,
		BandHeight: w.BandHeight,
	}
}
