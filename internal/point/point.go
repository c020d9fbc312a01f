// Package point holds integer grid coordinates and the pure vector helpers
// used to step things around the grid.
package point

import "fmt"

// DefaultCellSize is the number of grid units a single step covers.
const DefaultCellSize = 10

// Point represents a grid coordinate or a displacement between two coordinates.
type Point struct {
	X, Y int
}

// Canonical directions. None is the identity, never a travelling state.
var (
	None  = Point{X: 0, Y: 0}
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// New returns a point with the given components.
func New(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns a + b.
func Add(a, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Subtract returns a - b.
func Subtract(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// Reverse negates the non-zero components of p.
func Reverse(p Point) Point {
	var o Point
	if p.X != 0 {
		o.X = -p.X
	}
	if p.Y != 0 {
		o.Y = -p.Y
	}
	return o
}

// Normalize reduces every component of p to its sign.
func Normalize(p Point) Point {
	return Point{X: sign(p.X), Y: sign(p.Y)}
}

// IsEqual reports whether a and b have the same components.
func IsEqual(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

// IsZero reports whether p is the origin.
func IsZero(p Point) bool {
	return p.X == 0 && p.Y == 0
}

// MoveToGrid moves p by direction scaled to cellSize grid units.
// The direction does not have to be unit length.
func MoveToGrid(p, direction Point, cellSize int) Point {
	return Add(p, Point{X: direction.X * cellSize, Y: direction.Y * cellSize})
}

// Step moves p one default-sized cell in direction.
func Step(p, direction Point) Point {
	return MoveToGrid(p, direction, DefaultCellSize)
}

// IsCanonical reports whether p is one of the four travelling directions.
func IsCanonical(p Point) bool {
	switch p {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Name returns the direction name of p, or "" if p is not a canonical direction.
func Name(p Point) string {
	switch p {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return ""
}

// Parse maps a direction name to its canonical point.
func Parse(name string) (Point, bool) {
	switch name {
	case "none":
		return None, true
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return None, false
}

// String renders p as (x,y).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
