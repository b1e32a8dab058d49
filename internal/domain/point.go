package domain

import (
	"fmt"
	"math"
)

// Coordinate range contract.
//
// Every coordinate, and every coordinate a rasterizer derives from a center
// plus an extent, must fit in a signed 32-bit integer. The checks below panic
// when a caller breaks that contract; they are not recoverable errors.
const (
	MaxCoord = math.MaxInt32 - 1
	MinCoord = math.MinInt32 + 1
)

// Point is a discrete pixel location.
type Point struct {
	X, Y int
}

// NewPoint creates a point, panicking if either coordinate is outside
// [MinCoord, MaxCoord].
func NewPoint(x, y int) Point {
	checkCoord("x", x)
	checkCoord("y", y)
	return Point{X: x, Y: y}
}

// Pt is shorthand for Point{X: x, Y: y} without range checks.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// CheckExtent panics unless center±2*extent stays inside the coordinate range
// on both axes. Rasterizers call it before touching a shape's size.
func CheckExtent(center Point, extent uint32) {
	if !ExtentFits(center, extent) {
		panic(fmt.Sprintf("domain: extent %d around %v overflows the 32-bit coordinate range", extent, center))
	}
}

// ExtentFits reports whether center±2*extent stays inside the coordinate range
// on both axes. Use it to validate untrusted input before calling CheckExtent.
func ExtentFits(center Point, extent uint32) bool {
	e := 2 * int64(extent)
	for _, v := range [2]int{center.X, center.Y} {
		if int64(v)+e > MaxCoord || int64(v)-e < MinCoord {
			return false
		}
	}
	return true
}

// InRange reports whether both coordinates lie in [MinCoord, MaxCoord].
func (p Point) InRange() bool {
	return p.X >= MinCoord && p.X <= MaxCoord && p.Y >= MinCoord && p.Y <= MaxCoord
}

func checkCoord(axis string, v int) {
	if v > MaxCoord || v < MinCoord {
		panic(fmt.Sprintf("domain: %s coordinate %d outside 32-bit range", axis, v))
	}
}

// Size represents canvas dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// NewSize creates a new size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Contains reports whether p lies on the canvas.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Empty reports whether the canvas has no pixels.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}
