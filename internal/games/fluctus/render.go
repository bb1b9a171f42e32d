package fluctus

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/fluctus/internal/core"
	"github.com/vovakirdan/fluctus/internal/games/fluctus/sim"
)

// Visual characters for rendering
const (
	RibbonChar     = '░'
	PlayerChar     = '█'
	CoinChar       = '●'
	SpikeUpChar    = '▲'
	SpikeDownChar  = '▼'
	TitleText      = "F L U C T U S"
	PlayPrompt     = "< Press Space To Play >"
	ReplayPrompt   = "< Press Space To Replay >"
	PausedLabel    = "PAUSED"
	overlayDimming = 0.4
)

// TextColor is used for the HUD and overlays.
var TextColor = core.RGB(0xFF, 0xFF, 0xFF)

// viewport maps world units onto terminal cells.
type viewport struct {
	sx, sy float64 // Cells per world unit
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

// world returns the world coordinates of the center of cell (cx, cy).
func (v viewport) world(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / v.sx, (float64(cy) + 0.5) / v.sy
}

// cell returns the cell containing world point (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	vp := newViewport(dst, g.cfg.Screen.Width, g.cfg.Screen.Height)
	for _, r := range g.session.Renderables() {
		switch r.Shape {
		case sim.ShapeWaveRibbon:
			drawRibbon(dst, vp, r, g.cfg.Wave.Segments)
		case sim.ShapeTriangle:
			ch := SpikeUpChar
			if r.Side == sim.SideBelow {
				ch = SpikeDownChar
			}
			drawShape(dst, vp, r, ch, insideTriangle)
		default:
			ch := PlayerChar
			if r.Kind == sim.KindCoin {
				ch = CoinChar
			}
			drawShape(dst, vp, r, ch, insideQuad)
		}
	}

	g.drawOverlay(dst)
}

// drawRibbon fills the band around the path. The path is sampled at segment
// boundaries and interpolated in between, like a strip of quads.
func drawRibbon(dst *core.Screen, vp viewport, r sim.Renderable, segments int) {
	if segments < 1 {
		segments = 1
	}
	segW := r.Width / float64(segments)
	half := r.BandHeight / 2

	for cx := range dst.Width() {
		x, _ := vp.world(cx, 0)
		i := math.Floor(x / segW)
		x0 := i * segW
		y0 := r.Wave.HeightAt(x0)
		y1 := r.Wave.HeightAt(x0 + segW)
		center := y0 + (y1-y0)*(x-x0)/segW

		for cy := range dst.Height() {
			_, y := vp.world(cx, cy)
			if math.Abs(y-center) <= half {
				dst.SetCell(cx, cy, RibbonChar, r.Color)
			}
		}
	}
}

// insideFunc reports whether a point in shape-local coordinates is covered.
// Local y grows downwards; lx and ly are relative to the shape center.
type insideFunc func(r sim.Renderable, lx, ly float64) bool

func insideQuad(r sim.Renderable, lx, ly float64) bool {
	return math.Abs(lx) <= r.Width/2 && math.Abs(ly) <= r.Height/2
}

// insideTriangle tests an apex-up triangle, mirrored for spikes below the path.
func insideTriangle(r sim.Renderable, lx, ly float64) bool {
	if r.Side == sim.SideBelow {
		ly = -ly
	}
	if ly < -r.Height/2 || ly > r.Height/2 {
		return false
	}
	halfW := (ly + r.Height/2) / r.Height * r.Width / 2
	return math.Abs(lx) <= halfW
}

// drawShape rasterizes a rotated shape by testing every cell center in its
// bounding circle against the unrotated outline. The center cell is always
// drawn so small shapes stay visible on small terminals.
func drawShape(dst *core.Screen, vp viewport, r sim.Renderable, ch rune, inside insideFunc) {
	radius := math.Hypot(r.Width, r.Height) / 2
	minX, minY := vp.cell(r.X-radius, r.Y-radius)
	maxX, maxY := vp.cell(r.X+radius, r.Y+radius)

	rad := -r.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			x, y := vp.world(cx, cy)
			dx, dy := x-r.X, y-r.Y
			lx := dx*cos - dy*sin
			ly := dx*sin + dy*cos
			if inside(r, lx, ly) {
				dst.SetCell(cx, cy, ch, r.Color)
			}
		}
	}

	cx, cy := vp.cell(r.X, r.Y)
	dst.SetCell(cx, cy, ch, r.Color)
}

// drawOverlay draws the HUD. Outside a run the scene is dimmed under the text.
func (g *Game) drawOverlay(dst *core.Screen) {
	state := g.session.State()
	if state != sim.StateInGame {
		dst.Dim(overlayDimming)
	}

	h := dst.Height()
	score := fmt.Sprintf("%08d", g.session.CurrentScore())

	switch state {
	case sim.StatePreGame:
		dst.DrawTextCentered(h/3, TitleText, TextColor)
		dst.DrawTextCentered(h*2/3, PlayPrompt, TextColor)
	case sim.StateInGame:
		dst.DrawTextCentered(0, score, TextColor)
		if g.paused {
			drawPanel(dst, h/2, PausedLabel)
		}
	case sim.StatePostGame:
		dst.DrawTextCentered(h/3, score, TextColor)
		dst.DrawTextCentered(h*2/3, ReplayPrompt, TextColor)
	}
}

// drawPanel draws text centered on row y inside a cleared, framed box.
func drawPanel(dst *core.Screen, y int, text string) {
	w := utf8.RuneCountInString(text) + 4
	r := core.NewRect((dst.Width()-w)/2, y-1, w, 3)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, TextColor)
	dst.DrawTextCentered(y, text, TextColor)
}
