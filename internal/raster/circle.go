package raster

import "github.com/jwulff/vaint-go/internal/domain"

// AppendCircle appends the midpoint-circle outline of radius r around center.
//
// Each step of the first octant is mirrored into all eight octants, so the
// output length is always a multiple of 8. Points on the axes and diagonals
// are emitted more than once; use Unique for the distinct set.
//
// The caller must keep center±2r inside the 32-bit coordinate range.
func AppendCircle(buf []domain.Point, center domain.Point, r int) []domain.Point {
	cx, cy := center.X, center.Y
	plot := func(x, y int) {
		buf = append(buf,
			domain.Point{X: cx + x, Y: cy + y},
			domain.Point{X: cx - x, Y: cy + y},
			domain.Point{X: cx + x, Y: cy - y},
			domain.Point{X: cx - x, Y: cy - y},
			domain.Point{X: cx + y, Y: cy + x},
			domain.Point{X: cx - y, Y: cy + x},
			domain.Point{X: cx + y, Y: cy - x},
			domain.Point{X: cx - y, Y: cy - x},
		)
	}

	// roughly r/√2 steps per octant
	buf = grow(buf, 8*(r*3/4+2))

	x, y := 0, r
	d := 1 - r
	plot(x, y)
	for x < y {
		x++
		if d < 0 {
			d += 2*x + 1
		} else {
			y--
			d += 2*(x-y) + 1
		}
		plot(x, y)
	}
	return buf
}
