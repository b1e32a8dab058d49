package raster

import (
	"slices"

	"github.com/jwulff/vaint-go/internal/domain"
)

// cell states in the fill grid
const (
	cellOpen    uint8 = iota // not yet reached from outside
	cellWall                 // outline pixel
	cellOutside              // reachable from the border without crossing the outline
)

// boxCells is the largest bounding-box grid flooded whole. Bigger outlines
// that reach well past the canvas are flooded in a window the size of the
// visible interior instead.
const boxCells = 1 << 20

// AppendFill appends the interior pixels enclosed by outline, clipped to
// bounds, in row-major order.
//
// The outline is treated as a set of discrete pixels; it does not need to be
// ordered or form a single loop, so the octant/quadrant clusters produced by
// the midpoint rasterizers can be passed as they are. A pixel is interior if
// it is not on the outline and cannot reach the outline's bounding box border
// through 4-connected steps, which makes any 8-connected closed outline
// watertight. Holes in the outline let the outside leak in, and the enclosed
// region then yields no points.
//
// Shapes partly off the canvas still fill their visible part. When the
// outline's bounding box is much larger than the visible interior, only the
// visible window is flooded and its border is classified by counting outline
// crossings along each row; this assumes a simple closed outline such as the
// shape rasterizers produce. Memory is then bounded by the canvas, not the
// shape. The outline is not modified.
//
// An empty outline, an empty canvas, or an outline with no enclosed pixels
// leaves buf unchanged.
func AppendFill(buf []domain.Point, outline []domain.Point, bounds domain.Size) []domain.Point {
	if len(outline) == 0 || bounds.Empty() {
		return buf
	}

	minX, minY, maxX, maxY := bbox(outline)

	// Interior pixels lie strictly inside the bounding box.
	if maxX-minX < 2 || maxY-minY < 2 {
		return buf
	}
	x0, x1 := max(minX+1, 0), min(maxX-1, bounds.Width-1)
	y0, y1 := max(minY+1, 0), min(maxY-1, bounds.Height-1)
	if x0 > x1 || y0 > y1 {
		return buf
	}

	// float64: the product overflows int for extreme outlines.
	box := float64(maxX-minX+3) * float64(maxY-minY+3)
	window := float64(x1-x0+3) * float64(y1-y0+3)

	var g *fillGrid
	if box <= max(boxCells, 4*window) {
		g = boxGrid(outline, minX, minY, maxX, maxY)
	} else {
		g = windowGrid(outline, x0-1, y0-1, x1+1, y1+1)
	}
	return g.appendOpen(buf, x0, y0, x1, y1)
}

func bbox(outline []domain.Point) (minX, minY, maxX, maxY int) {
	minX, minY = outline[0].X, outline[0].Y
	maxX, maxY = minX, minY
	for _, p := range outline[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// boxGrid floods the whole bounding box from its corner.
func boxGrid(outline []domain.Point, minX, minY, maxX, maxY int) *fillGrid {
	// One pixel of margin guarantees the grid border is outside.
	g := newFillGrid(minX-1, minY-1, maxX-minX+3, maxY-minY+3)
	for _, p := range outline {
		g.set(p.X-g.x0, p.Y-g.y0, cellWall)
	}
	g.flood([]cell{{0, 0}})
	return g
}

// windowGrid floods only [gx0, gx1] x [gy0, gy1]. Border cells outside the
// shape, by row crossing parity, seed the flood.
func windowGrid(outline []domain.Point, gx0, gy0, gx1, gy1 int) *fillGrid {
	g := newFillGrid(gx0, gy0, gx1-gx0+1, gy1-gy0+1)

	// rows[i] collects the outline xs of row gy0-1+i, so every grid row
	// sees its neighbors above and below.
	rows := make([][]int, g.h+2)
	for _, p := range outline {
		i := p.Y - (gy0 - 1)
		if i < 0 || i >= len(rows) {
			continue
		}
		rows[i] = append(rows[i], p.X)
		if x, y := p.X-gx0, p.Y-gy0; x >= 0 && x < g.w && y >= 0 && y < g.h {
			g.set(x, y, cellWall)
		}
	}
	for i := range rows {
		slices.Sort(rows[i])
		rows[i] = slices.Compact(rows[i])
	}

	var seeds []cell
	for y := 0; y < g.h; y++ {
		runs := rowRuns(rows[y], rows[y+1], rows[y+2])
		edge := y == 0 || y == g.h-1
		for x := 0; x < g.w; x++ {
			if !edge && x != 0 && x != g.w-1 {
				continue
			}
			if g.at(x, y) == cellOpen && outsideOf(runs, gx0+x) {
				seeds = append(seeds, cell{x, y})
			}
		}
	}
	g.flood(seeds)
	return g
}

// run is a horizontal stretch of outline pixels in one row. It is a crossing
// when the outline continues both above and below it; otherwise it only
// touches the row, like the top of a circle.
type run struct {
	lo, hi   int
	crossing bool
}

// rowRuns groups the sorted xs of a row into runs.
func rowRuns(above, here, below []int) []run {
	var runs []run
	for i := 0; i < len(here); {
		j := i
		for j+1 < len(here) && here[j+1] == here[j]+1 {
			j++
		}
		lo, hi := here[i], here[j]
		runs = append(runs, run{
			lo:       lo,
			hi:       hi,
			crossing: touches(above, lo-1, hi+1) && touches(below, lo-1, hi+1),
		})
		i = j + 1
	}
	return runs
}

// touches reports whether sorted xs has a value in [lo, hi].
func touches(xs []int, lo, hi int) bool {
	i, _ := slices.BinarySearch(xs, lo)
	return i < len(xs) && xs[i] <= hi
}

// outsideOf reports whether x, which is not on the outline, has an even
// number of crossings to its left.
func outsideOf(runs []run, x int) bool {
	n := 0
	for _, r := range runs {
		if r.hi >= x {
			break
		}
		if r.crossing {
			n++
		}
	}
	return n%2 == 0
}

type cell struct{ x, y int }

type fillGrid struct {
	x0, y0 int
	w, h   int
	cells  []uint8
}

func newFillGrid(x0, y0, w, h int) *fillGrid {
	return &fillGrid{x0: x0, y0: y0, w: w, h: h, cells: make([]uint8, w*h)}
}

func (g *fillGrid) at(x, y int) uint8 {
	return g.cells[y*g.w+x]
}

func (g *fillGrid) set(x, y int, v uint8) {
	g.cells[y*g.w+x] = v
}

// appendOpen appends the open cells of [x0, x1] x [y0, y1], given in canvas
// coordinates.
func (g *fillGrid) appendOpen(buf []domain.Point, x0, y0, x1, y1 int) []domain.Point {
	for y := y0; y <= y1; y++ {
		row := (y - g.y0) * g.w
		for x := x0; x <= x1; x++ {
			if g.cells[row+x-g.x0] == cellOpen {
				buf = append(buf, domain.Point{X: x, Y: y})
			}
		}
	}
	return buf
}

// flood marks every open cell reachable from seeds as outside. It is a
// span-based scanline fill driven by an explicit stack, so depth never
// depends on the area being filled.
func (g *fillGrid) flood(stack []cell) {
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.at(s.x, s.y) != cellOpen {
			continue
		}

		left := s.x
		for left > 0 && g.at(left-1, s.y) == cellOpen {
			left--
		}
		right := s.x
		for right < g.w-1 && g.at(right+1, s.y) == cellOpen {
			right++
		}
		for x := left; x <= right; x++ {
			g.set(x, s.y, cellOutside)
		}

		// Queue one seed per open run in the rows above and below.
		for _, ny := range [2]int{s.y - 1, s.y + 1} {
			if ny < 0 || ny >= g.h {
				continue
			}
			inRun := false
			for x := left; x <= right; x++ {
				open := g.at(x, ny) == cellOpen
				if open && !inRun {
					stack = append(stack, cell{x, ny})
				}
				inRun = open
			}
		}
	}
}
