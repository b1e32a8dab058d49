// Package raster converts continuous shapes into discrete pixel points.
//
// Every function appends to a caller-owned buffer and returns the extended
// slice, so a single buffer can be reused across calls with buf[:0]. None of
// the functions keep state; independent calls are safe to run concurrently as
// long as they do not share a buffer.
package raster

import (
	"math"

	"github.com/jwulff/vaint-go/internal/domain"
)

// AppendLine appends the DDA rasterization of the segment p0-p1 to buf.
//
// Both endpoints are included and consecutive points differ by at most one in
// each axis. A zero-length segment yields the single point p0.
func AppendLine(buf []domain.Point, p0, p1 domain.Point) []domain.Point {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return append(buf, p0)
	}

	incX := float64(dx) / float64(steps)
	incY := float64(dy) / float64(steps)

	buf = grow(buf, steps+1)
	for k := 0; k < steps; k++ {
		buf = append(buf, domain.Point{
			X: p0.X + int(math.Round(incX*float64(k))),
			Y: p0.Y + int(math.Round(incY*float64(k))),
		})
	}
	// The last step is pinned to p1; accumulated float error must never move it.
	return append(buf, p1)
}

// AppendBresenham appends the integer-only Bresenham rasterization of p0-p1.
// It visits the same number of points as AppendLine and agrees with it on the
// vast majority of them; the two differ only where DDA rounds a half.
func AppendBresenham(buf []domain.Point, p0, p1 domain.Point) []domain.Point {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx := 1
	if p0.X >= p1.X {
		sx = -1
	}
	sy := 1
	if p0.Y >= p1.Y {
		sy = -1
	}
	err := dx + dy

	buf = grow(buf, max(dx, -dy)+1)
	x, y := p0.X, p0.Y
	for {
		buf = append(buf, domain.Point{X: x, Y: y})
		if x == p1.X && y == p1.Y {
			return buf
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// grow makes room for n more points without reallocating in the loop.
func grow(buf []domain.Point, n int) []domain.Point {
	if cap(buf)-len(buf) >= n {
		return buf
	}
	out := make([]domain.Point, len(buf), len(buf)+n)
	copy(out, buf)
	return out
}
