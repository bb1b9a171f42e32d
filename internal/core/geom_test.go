package core

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "identical centers",
			a:        NewBox(50, 50, 20, 20),
			b:        NewBox(50, 50, 25, 25),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "touching on x axis (no overlap)",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(22.5, 0, 25, 25),
			expected: false,
		},
		{
			name:     "touching on y axis (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "just inside on x axis",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(22.4, 0, 25, 25),
			expected: true,
		},
		{
			name:     "separated",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(30, 30, 10, 10),
			expected: false,
		},
		{
			name:     "negative height uses magnitude",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(0, 15, 25, -25),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxHalfExtents(t *testing.T) {
	b := NewBox(1, 2, -8, -6)
	if b.HalfW() != 4 {
		t.Errorf("HalfW() = %f, expected 4", b.HalfW())
	}
	if b.HalfH() != 3 {
		t.Errorf("HalfH() = %f, expected 3", b.HalfH())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{0.1, 0.2, math.Inf(1), 0.2},
		{1e9, 0.2, math.Inf(1), 1e9},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestColor(t *testing.T) {
	c := RGB(0xA4, 0xDF, 0xE0)
	if c.Hex() != "#a4dfe0" {
		t.Errorf("Hex() = %q, expected %q", c.Hex(), "#a4dfe0")
	}
	r, g, b := c.RGB()
	if r != 0xA4 || g != 0xDF || b != 0xE0 {
		t.Errorf("RGB() = (%x, %x, %x), expected (a4, df, e0)", r, g, b)
	}

	if ColorDefault.Dim(0.5) != ColorDefault {
		t.Error("Dim should keep the default color unstyled")
	}
	if RGB(200, 100, 50).Dim(0.5) != RGB(100, 50, 25) {
		t.Errorf("Dim(0.5) = %s, expected #643219", RGB(200, 100, 50).Dim(0.5).Hex())
	}
	if RGB(10, 10, 10).Dim(0) == ColorDefault {
		t.Error("Dim(0) must not collapse to the default color")
	}
}
