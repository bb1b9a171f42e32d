package core

import "fmt"

// Color is a 24-bit RGB color packed as 0xRRGGBB.
// The zero value means "terminal default" and carries no styling.
type Color uint32

// ColorDefault leaves a cell unstyled.
const ColorDefault Color = 0

// RGB packs three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns the individual channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Dim returns the color scaled towards black by factor (0..1).
// Used for the overlay shown outside of active play.
func (c Color) Dim(factor float64) Color {
	if c == ColorDefault {
		return c
	}
	factor = ClampF(factor, 0, 1)
	r, g, b := c.RGB()
	scaled := RGB(
		uint8(float64(r)*factor),
		uint8(float64(g)*factor),
		uint8(float64(b)*factor),
	)
	if scaled == ColorDefault {
		// Pure black would read as "unstyled"
		return RGB(0, 0, 1)
	}
	return scaled
}
