// Package physics provides geometry helpers and collision detection.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
// Touching circles (distance == r1+r2) do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// RotatePoint rotates (x, y) around (cx, cy) by angle radians.
func RotatePoint(x, y, cx, cy, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	dx := x - cx
	dy := y - cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}

// Heading returns the unit vector for angle, where 0 points right and
// -π/2 points up (screen coordinates grow downward).
func Heading(angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return cos, sin
}

// WrapPosition wraps x and y into [0, width) and [0, height).
// Non-positive dimensions leave the coordinate untouched.
func WrapPosition(x, y *float64, width, height float64) {
	if width > 0 {
		*x = math.Mod(*x, width)
		if *x < 0 {
			*x += width
		}
	}
	if height > 0 {
		*y = math.Mod(*y, height)
		if *y < 0 {
			*y += height
		}
	}
}
