package raster

import "github.com/jwulff/vaint-go/internal/domain"

// AppendEllipse appends the two-region midpoint-ellipse outline with radii
// rx, ry around center. Every step is mirrored into the four quadrants.
//
// Equal radii are valid input but the shape layer routes them to
// AppendCircle instead.
//
// The decision variables start from rounded real values. Rounding is
// round-half-up (add 0.5, truncate); switching to another rounding mode moves
// pixels at the region boundary.
//
// For very flat ellipses region 2 can reach y == 0 before x reaches rx. The
// remaining axis pixels are then appended so the outline stays closed.
func AppendEllipse(buf []domain.Point, center domain.Point, rx, ry int) []domain.Point {
	cx, cy := center.X, center.Y
	plot := func(x, y int) {
		buf = append(buf,
			domain.Point{X: cx + x, Y: cy + y},
			domain.Point{X: cx - x, Y: cy + y},
			domain.Point{X: cx + x, Y: cy - y},
			domain.Point{X: cx - x, Y: cy - y},
		)
	}

	rx2, ry2 := rx*rx, ry*ry
	twoRx2, twoRy2 := 2*rx2, 2*ry2

	buf = grow(buf, 4*(rx+ry+1))

	x, y := 0, ry
	plot(x, y)

	// px and py track 2*ry²*x and 2*rx²*y.
	px, py := 0, twoRx2*y

	// Region 1: |slope| < 1, step x.
	p := roundHalfUp(float64(ry2) - float64(rx2*ry) + 0.25*float64(rx2))
	for px < py {
		x++
		px += twoRy2
		if p < 0 {
			p += ry2 + px
		} else {
			y--
			py -= twoRx2
			p += ry2 + px - py
		}
		plot(x, y)
	}

	// Region 2: |slope| >= 1, step y.
	fx, fy := float64(x)+0.5, float64(y)-1
	p = roundHalfUp(float64(ry2)*fx*fx + float64(rx2)*fy*fy - float64(rx2)*float64(ry2))
	for y > 0 {
		y--
		py -= twoRx2
		if p > 0 {
			p += rx2 - py
		} else {
			x++
			px += twoRy2
			p += rx2 - py + px
		}
		plot(x, y)
	}

	for x < rx {
		x++
		plot(x, 0)
	}
	return buf
}

// roundHalfUp adds 0.5 and truncates toward zero.
func roundHalfUp(v float64) int {
	return int(v + 0.5)
}
