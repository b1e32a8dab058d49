package raster

import (
	"fmt"
	"testing"

	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadrant returns the first-quadrant steps in emission order; every step
// emits four points starting with (cx+x, cy+y).
func quadrant(points []domain.Point, center domain.Point) []domain.Point {
	out := make([]domain.Point, 0, len(points)/4)
	for i := 0; i < len(points); i += 4 {
		p := points[i]
		out = append(out, domain.Pt(p.X-center.X, p.Y-center.Y))
	}
	return out
}

func TestAppendEllipseRatios(t *testing.T) {
	center := domain.Pt(-20, 35)
	ratios := [][2]int{
		{8, 6}, {6, 8}, {10, 3}, {3, 10}, {20, 1}, {1, 20},
		{100, 40}, {2, 1}, {1, 2}, {50, 49}, {7, 13}, {64, 16},
	}

	for _, rr := range ratios {
		rx, ry := rr[0], rr[1]
		t.Run(fmt.Sprintf("%dx%d", rx, ry), func(t *testing.T) {
			ellipse := AppendEllipse(nil, center, rx, ry)
			require.Zero(t, len(ellipse)%4)

			distinct := make(map[domain.Point]bool)
			for _, p := range ellipse {
				distinct[p] = true
			}

			// Symmetric under x and y reflections about the center.
			for p := range distinct {
				dx, dy := p.X-center.X, p.Y-center.Y
				assert.True(t, distinct[domain.Pt(center.X-dx, center.Y+dy)], "%v", p)
				assert.True(t, distinct[domain.Pt(center.X+dx, center.Y-dy)], "%v", p)
			}

			q := quadrant(ellipse, center)
			assert.Equal(t, domain.Pt(0, ry), q[0])
			assert.Equal(t, domain.Pt(rx, 0), q[len(q)-1])

			// Region 1 and region 2 join without gaps or backtracking.
			for i := 1; i < len(q); i++ {
				stepX := q[i].X - q[i-1].X
				stepY := q[i-1].Y - q[i].Y
				assert.True(t, stepX == 0 || stepX == 1, "x step %d at %d", stepX, i)
				assert.True(t, stepY == 0 || stepY == 1, "y step %d at %d", stepY, i)
				assert.False(t, stepX == 0 && stepY == 0, "repeated step at %d", i)
			}

			// Every point lies close to the true curve.
			for _, p := range q {
				fx, fy := float64(p.X)/float64(rx), float64(p.Y)/float64(ry)
				assert.InDelta(t, 1.0, fx*fx+fy*fy, 1.0, "%v", p)
			}
		})
	}
}

func TestAppendEllipseRegionBoundary(t *testing.T) {
	q := quadrant(AppendEllipse(nil, domain.Pt(0, 0), 8, 6), domain.Pt(0, 0))
	assert.Equal(t, pts(0, 6, 1, 6, 2, 6, 3, 6, 4, 5, 5, 5, 6, 4, 7, 3, 8, 2, 8, 1, 8, 0), q)
}

func TestAppendEllipseFlatClosesAxis(t *testing.T) {
	q := quadrant(AppendEllipse(nil, domain.Pt(0, 0), 5, 0), domain.Pt(0, 0))
	assert.Equal(t, pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0), q)

	q = quadrant(AppendEllipse(nil, domain.Pt(0, 0), 0, 3), domain.Pt(0, 0))
	assert.Equal(t, pts(0, 3, 0, 2, 0, 1, 0, 0), q)
}

func TestAppendEllipseDeterministic(t *testing.T) {
	a := AppendEllipse(nil, domain.Pt(1, 2), 30, 11)
	b := AppendEllipse(nil, domain.Pt(1, 2), 30, 11)
	assert.Equal(t, a, b)
}
