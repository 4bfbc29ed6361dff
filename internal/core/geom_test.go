package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "sprite left of canvas",
			a:        NewRect(0, 0, 40, 20),
			b:        NewRect(-8, 4, 8, 8),
			expected: false,
		},
		{
			name:     "sprite partially above canvas",
			a:        NewRect(0, 0, 40, 20),
			b:        NewRect(3, -5, 8, 8),
			expected: true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Intersection should be symmetric
			if tc.b.Intersects(tc.a) != tc.expected {
				t.Errorf("Intersects() not symmetric")
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 4, 2)

	if !r.Contains(0, 0) || !r.Contains(3, 1) {
		t.Error("corners inside the rect should be contained")
	}
	if r.Contains(4, 0) || r.Contains(0, 2) || r.Contains(-1, 0) {
		t.Error("points on or past the far edges should not be contained")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 39, 0},
		{40, 0, 39, 39},
		{0, 0, 0, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
