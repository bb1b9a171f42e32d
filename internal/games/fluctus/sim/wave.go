// Package sim implements the FLUCTUS level simulation: the wave path, the
// player and obstacle entities, the spawner and the per-tick level update.
//
// The package is frame-stepped and single-threaded. It consumes a time step
// and produces renderables; it never draws, reads input or touches a terminal.
package sim

import "math"

// Field is a traveling sinusoid that the player and obstacles ride on.
// All methods are pure; a zero Amplitude or Frequency yields a flat line.
type Field struct {
	Midline   float64 // Vertical center of the oscillation
	Offset    float64 // Horizontal phase shift, advanced every tick
	Amplitude float64
	Frequency float64
}

// HeightAt returns the y coordinate of the path at horizontal position x.
func (f Field) HeightAt(x float64) float64 {
	return f.Midline + f.Amplitude*math.Sin(f.Frequency*(x+f.Offset))
}

// TangentAngleAt returns the slope angle of the path at x in degrees,
// estimated from the two points one unit to either side.
func (f Field) TangentAngleAt(x float64) float64 {
	x1, x2 := x-1, x+1
	y1, y2 := f.HeightAt(x1), f.HeightAt(x2)
	return math.Atan((y2-y1)/(x2-x1)) * 180 / math.Pi
}
