package raster

import (
	"testing"

	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canvas = domain.NewSize(200, 200)

func TestAppendFillEmptyOutline(t *testing.T) {
	fill := AppendFill(nil, nil, canvas)
	assert.Empty(t, fill)

	fill = AppendFill(nil, []domain.Point{}, canvas)
	assert.Empty(t, fill)
}

func TestAppendFillEmptyCanvas(t *testing.T) {
	outline := AppendRect(nil, domain.Pt(5, 5), 4, 4)
	assert.Empty(t, AppendFill(nil, outline, domain.NewSize(0, 0)))
}

func TestAppendFillUnitCircle(t *testing.T) {
	outline := AppendCircle(nil, domain.Pt(5, 5), 1)
	assert.Equal(t, pts(5, 5), AppendFill(nil, outline, canvas))
}

func TestAppendFillSquare(t *testing.T) {
	outline := AppendRect(nil, domain.Pt(50, 50), 10, 10)
	fill := AppendFill(nil, outline, canvas)

	require.Len(t, fill, 81)
	assert.Equal(t, domain.Pt(46, 46), fill[0])
	assert.Equal(t, domain.Pt(54, 54), fill[len(fill)-1])
}

func TestAppendFillRectangle(t *testing.T) {
	outline := AppendRect(nil, domain.Pt(50, 50), 10, 20)
	assert.Len(t, AppendFill(nil, outline, canvas), 9*19)
}

func TestAppendFillCircleInsideRadius(t *testing.T) {
	center := domain.Pt(50, 50)
	expected := map[int]int{2: 9, 3: 21, 5: 69, 10: 293}

	for r, count := range expected {
		outline := AppendCircle(nil, center, r)
		fill := AppendFill(nil, outline, canvas)
		assert.Len(t, fill, count, "r=%d", r)

		onOutline := make(map[domain.Point]bool)
		for _, p := range outline {
			onOutline[p] = true
		}
		for _, p := range fill {
			dx, dy := p.X-center.X, p.Y-center.Y
			assert.Less(t, dx*dx+dy*dy, r*r, "r=%d %v", r, p)
			assert.False(t, onOutline[p], "fill overlaps outline at %v", p)
		}
	}
}

func TestAppendFillEllipse(t *testing.T) {
	outline := AppendEllipse(nil, domain.Pt(50, 50), 8, 6)
	assert.Len(t, AppendFill(nil, outline, canvas), 137)
}

func TestAppendFillClipsToCanvas(t *testing.T) {
	// Square centered on the origin: only the quarter with x,y >= 0 is visible.
	outline := AppendRect(nil, domain.Pt(0, 0), 10, 10)
	fill := AppendFill(nil, outline, canvas)

	assert.Len(t, fill, 25)
	for _, p := range fill {
		assert.True(t, canvas.Contains(p), "%v", p)
	}
}

func TestAppendFillOffCanvas(t *testing.T) {
	outline := AppendCircle(nil, domain.Pt(-100, -100), 20)
	assert.Empty(t, AppendFill(nil, outline, canvas))
}

func TestAppendFillConcave(t *testing.T) {
	// A "U": the notch between the arms is outside the shape.
	var outline []domain.Point
	corners := []domain.Point{
		domain.Pt(10, 10), domain.Pt(14, 10), domain.Pt(14, 16), domain.Pt(16, 16),
		domain.Pt(16, 10), domain.Pt(20, 10), domain.Pt(20, 20), domain.Pt(10, 20),
	}
	for i := range corners {
		outline = AppendLine(outline, corners[i], corners[(i+1)%len(corners)])
	}

	fill := AppendFill(nil, outline, canvas)
	inside := make(map[domain.Point]bool)
	for _, p := range fill {
		inside[p] = true
	}

	assert.True(t, inside[domain.Pt(12, 15)], "left arm")
	assert.True(t, inside[domain.Pt(18, 15)], "right arm")
	assert.True(t, inside[domain.Pt(15, 18)], "base")
	assert.False(t, inside[domain.Pt(15, 12)], "notch")
}

func TestAppendFillOpenOutline(t *testing.T) {
	// A straight line encloses nothing.
	outline := AppendLine(nil, domain.Pt(0, 0), domain.Pt(50, 50))
	assert.Empty(t, AppendFill(nil, outline, canvas))
}

func TestAppendFillDoesNotMutateOutline(t *testing.T) {
	outline := AppendCircle(nil, domain.Pt(30, 30), 12)
	before := append([]domain.Point(nil), outline...)

	AppendFill(nil, outline, canvas)
	assert.Equal(t, before, outline)
}

func TestAppendFillLargeCanvas(t *testing.T) {
	// Deep enough that a recursive fill would blow the stack.
	outline := AppendCircle(nil, domain.Pt(2000, 2000), 1500)
	fill := AppendFill(nil, outline, domain.NewSize(4000, 4000))
	assert.Greater(t, len(fill), 7_000_000)
}

func TestAppendFillHugeCircleSmallCanvas(t *testing.T) {
	small := domain.NewSize(80, 60)
	const r = 20000

	tests := []struct {
		name   string
		center domain.Point
		want   int
	}{
		{"canvas inside circle", domain.Pt(40, 30), 80 * 60},
		{"canvas in bounding box corner", domain.Pt(r, r), 0},
		{"top of circle crosses canvas", domain.Pt(40, 30+r), 80 * 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outline := AppendCircle(nil, tt.center, r)
			fill := AppendFill(nil, outline, small)
			assert.Len(t, fill, tt.want)

			for _, p := range fill {
				require.True(t, small.Contains(p), "%v", p)
				dx, dy := int64(p.X-tt.center.X), int64(p.Y-tt.center.Y)
				require.Less(t, dx*dx+dy*dy, int64(r*r), "%v", p)
			}
		})
	}
}

func TestWindowedFillMatchesBoxFill(t *testing.T) {
	small := domain.NewSize(50, 40)

	outlines := map[string][]domain.Point{
		"circle at origin":       AppendCircle(nil, domain.Pt(0, 0), 15),
		"circle right edge":      AppendCircle(nil, domain.Pt(45, 20), 15),
		"circle top edge":        AppendCircle(nil, domain.Pt(25, -5), 15),
		"circle inside":          AppendCircle(nil, domain.Pt(25, 20), 15),
		"circle covers canvas":   AppendCircle(nil, domain.Pt(25, 20), 60),
		"ellipse bottom left":    AppendEllipse(nil, domain.Pt(10, 35), 30, 10),
		"ellipse top right":      AppendEllipse(nil, domain.Pt(48, 5), 8, 25),
		"flat ellipse on top":    AppendEllipse(nil, domain.Pt(25, 0), 25, 3),
		"ellipse covers canvas":  AppendEllipse(nil, domain.Pt(25, 20), 70, 50),
		"rect at origin":         AppendRect(nil, domain.Pt(0, 0), 30, 20),
		"rect bottom right":      AppendRect(nil, domain.Pt(45, 35), 30, 20),
		"rect covers canvas":     AppendRect(nil, domain.Pt(25, 20), 100, 80),
		"rect crosses left side": AppendRect(nil, domain.Pt(-10, 20), 40, 10),
	}
	for name, outline := range outlines {
		t.Run(name, func(t *testing.T) {
			minX, minY, maxX, maxY := bbox(outline)
			x0, x1 := max(minX+1, 0), min(maxX-1, small.Width-1)
			y0, y1 := max(minY+1, 0), min(maxY-1, small.Height-1)
			require.LessOrEqual(t, x0, x1)
			require.LessOrEqual(t, y0, y1)

			want := boxGrid(outline, minX, minY, maxX, maxY).appendOpen(nil, x0, y0, x1, y1)
			got := windowGrid(outline, x0-1, y0-1, x1+1, y1+1).appendOpen(nil, x0, y0, x1, y1)
			assert.Equal(t, want, got)
		})
	}
}

func TestRowRunsCrossing(t *testing.T) {
	// The top of a shape only touches the row; its sides cross it.
	runs := rowRuns(nil, []int{3, 4, 5}, []int{2, 6})
	require.Len(t, runs, 1)
	assert.False(t, runs[0].crossing)

	runs = rowRuns([]int{1, 9}, []int{1, 9}, []int{2, 8})
	require.Len(t, runs, 2)
	assert.True(t, runs[0].crossing)
	assert.True(t, runs[1].crossing)

	assert.True(t, outsideOf(runs, 0))
	assert.False(t, outsideOf(runs, 5))
	assert.True(t, outsideOf(runs, 10))
}
