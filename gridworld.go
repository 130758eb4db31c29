package gridworld

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Common colors used by drawing helpers and default backgrounds.
var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned pixel rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Overlaps reports whether r and other share any area. Rectangles that only
// touch along an edge do not overlap; this is collider semantics, used by
// all spatial queries.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// CellRect returns the pixel rectangle covered by the cell (x, y) in a grid
// whose cells are cellSize pixels on a side.
func CellRect(x, y, cellSize int) Rect {
	return Rect{
		X:      float64(x * cellSize),
		Y:      float64(y * cellSize),
		Width:  float64(cellSize),
		Height: float64(cellSize),
	}
}

// clampInt limits v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// degToRad converts degrees to radians when multiplied.
const degToRad = math.Pi / 180

// normalizeDegrees wraps an angle into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
