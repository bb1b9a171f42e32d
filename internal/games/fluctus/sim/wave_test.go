package sim

import (
	"math"
	"testing"
)

func TestFieldHeightBounded(t *testing.T) {
	const mid = 120.0
	for _, amp := range []float64{0, 10, 30, 80} {
		for _, freq := range []float64{0, 0.005, 0.05, 1} {
			for _, offset := range []float64{0, 137.5, -2000} {
				f := Field{Midline: mid, Offset: offset, Amplitude: amp, Frequency: freq}
				for x := -100.0; x <= 500; x += 7 {
					h := f.HeightAt(x)
					if h < mid-amp-1e-9 || h > mid+amp+1e-9 {
						t.Fatalf("HeightAt(%g) = %f outside [%f, %f] for %+v", x, h, mid-amp, mid+amp, f)
					}
				}
			}
		}
	}
}

func TestFieldFlat(t *testing.T) {
	tests := []struct {
		name  string
		field Field
	}{
		{"zero amplitude", Field{Midline: 120, Offset: 50, Amplitude: 0, Frequency: 0.005}},
		{"zero frequency", Field{Midline: 120, Offset: 50, Amplitude: 30, Frequency: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, x := range []float64{0, 50, 440} {
				if got := tc.field.TangentAngleAt(x); got != 0 {
					t.Errorf("TangentAngleAt(%g) = %f, expected 0", x, got)
				}
			}
		})
	}

	f := Field{Midline: 120, Amplitude: 30}
	if got := f.HeightAt(77); got != 120 {
		t.Errorf("HeightAt with zero frequency = %f, expected midline 120", got)
	}
}

func TestTangentAngleVanishesWithAmplitude(t *testing.T) {
	prev := math.Inf(1)
	for _, amp := range []float64{30, 3, 0.3, 0.003, 1e-6} {
		f := Field{Midline: 120, Amplitude: amp, Frequency: 0.005}
		angle := math.Abs(f.TangentAngleAt(0))
		if angle >= prev {
			t.Errorf("angle should shrink with amplitude: amp=%g angle=%f prev=%f", amp, angle, prev)
		}
		prev = angle
	}
	if prev > 1e-3 {
		t.Errorf("angle at amplitude 1e-6 = %f, expected ~0", prev)
	}
}

func TestTangentAngleMatchesSlope(t *testing.T) {
	f := Field{Midline: 120, Amplitude: 30, Frequency: 0.005}
	// dy/dx at x=0 is amplitude*frequency = 0.15
	want := math.Atan(0.15) * 180 / math.Pi
	if got := f.TangentAngleAt(0); math.Abs(got-want) > 0.01 {
		t.Errorf("TangentAngleAt(0) = %f, expected %f", got, want)
	}

	// Half a period later the slope is mirrored
	x := math.Pi / 0.005
	if got := f.TangentAngleAt(x); math.Abs(got+want) > 0.01 {
		t.Errorf("TangentAngleAt(%f) = %f, expected %f", x, got, -want)
	}
}
