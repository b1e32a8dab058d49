package raster

import "github.com/jwulff/vaint-go/internal/domain"

// AppendRect appends the outline of a width x height axis-aligned rectangle
// centered on center.
//
// The top-left corner is center - (width/2, height/2) with integer division,
// so for odd dimensions the extra pixel lands on the right/bottom edge. The
// right edge is at corner.X+width and the bottom edge at corner.Y+height,
// giving width+1 columns and height+1 rows. Corner pixels appear twice.
func AppendRect(buf []domain.Point, center domain.Point, width, height int) []domain.Point {
	x0 := center.X - width/2
	y0 := center.Y - height/2

	buf = grow(buf, 2*(width+1)+2*(height+1))

	// Top and bottom edges
	for k := 0; k <= width; k++ {
		buf = append(buf,
			domain.Point{X: x0 + k, Y: y0},
			domain.Point{X: x0 + k, Y: y0 + height},
		)
	}
	// Left and right edges
	for k := 0; k <= height; k++ {
		buf = append(buf,
			domain.Point{X: x0, Y: y0 + k},
			domain.Point{X: x0 + width, Y: y0 + k},
		)
	}
	return buf
}
