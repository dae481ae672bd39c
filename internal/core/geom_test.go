package core

import "testing"

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
		{"last column", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
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

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 0}

	if got := p.Add(1, 0); got != (Point{X: 4, Y: 0}) {
		t.Errorf("Add(1, 0) = %v, expected (4, 0)", got)
	}
	if got := p.Add(-4, 2); got != (Point{X: -1, Y: 2}) {
		t.Errorf("Add(-4, 2) = %v, expected (-1, 2)", got)
	}
	if p != (Point{X: 3, Y: 0}) {
		t.Error("Add should not modify the receiver")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestColorOpaque(t *testing.T) {
	if ColorNone.Opaque() {
		t.Error("ColorNone should be transparent")
	}
	for _, c := range []Color{ColorCyan, ColorYellow, ColorPurple, ColorOrange, ColorGray} {
		if !c.Opaque() {
			t.Errorf("%s should be opaque", c)
		}
	}
}
