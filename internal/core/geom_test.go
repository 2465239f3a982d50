package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent edges do not overlap", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"bullet inside invader", NewRect(100, 40, 20, 20), NewRect(109, 50, 2, 8), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	got := NewRect(0, 0, 10, 10).Intersect(NewRect(5, 2, 10, 3))
	if got != NewRect(5, 2, 5, 3) {
		t.Errorf("Intersect() = %+v", got)
	}
	if !NewRect(0, 0, 2, 2).Intersect(NewRect(4, 4, 2, 2)).Empty() {
		t.Error("disjoint rects should intersect to an empty rect")
	}
}

func TestRectContainsAndCenter(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 25, false},
		{5, 15, false},
	}
	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}

	if cx, cy := r.Center(); cx != 20 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (20, 17)", cx, cy)
	}
}

func TestCirclesTouchBoundary(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		radius   float64
		expected bool
	}{
		{"inside", 10, 0, 40, true},
		{"exactly at radius", 40, 0, 40, false},
		{"3-4-5 at radius", 24, 32, 40, false},
		{"just inside", 39.999, 0, 40, true},
		{"outside", 30, 30, 40, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesTouch(100, 100, 100+tc.dx, 100+tc.dy, tc.radius); got != tc.expected {
				t.Errorf("CirclesTouch() = %v, expected %v (dist %.3f)", got, tc.expected, math.Hypot(tc.dx, tc.dy))
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(255.5, 25, 255); got != 255 {
		t.Errorf("ClampF() = %f, expected 255", got)
	}
}
