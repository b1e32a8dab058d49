package shape

import (
	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/jwulff/vaint-go/internal/raster"
)

// Rect is an axis-aligned rectangle. It reports KindSquare when both sides
// are equal and KindRectangle otherwise; the outline is traced the same way
// in both cases.
type Rect struct {
	width  uint32
	height uint32
	style  Style
}

// NewRect creates a rectangle with the default style. It panics if a side
// does not fit the coordinate range.
func NewRect(width, height uint32) Rect {
	checkExtent("rectangle width", width)
	checkExtent("rectangle height", height)
	return Rect{width: width, height: height, style: DefaultStyle()}
}

// NewSquare creates a square with the default style.
func NewSquare(side uint32) Rect {
	return NewRect(side, side)
}

// Size returns the width and height.
func (r Rect) Size() (uint32, uint32) { return r.width, r.height }

// WithStyle returns a copy of the rectangle using style.
func (r Rect) WithStyle(style Style) Rect {
	r.style = style
	return r
}

func (r Rect) Kind() Kind {
	if r.width == r.height {
		return KindSquare
	}
	return KindRectangle
}

func (r Rect) Style() Style { return r.style }

func (r Rect) AppendOutlineAt(buf []domain.Point, center domain.Point) []domain.Point {
	domain.CheckExtent(center, max(r.width, r.height))
	return raster.AppendRect(buf, center, int(r.width), int(r.height))
}

func (r Rect) AppendOutline(buf []domain.Point) []domain.Point {
	return r.AppendOutlineAt(buf, domain.Point{})
}

func (r Rect) AppendFill(outline []domain.Point, bounds domain.Size, buf []domain.Point) ([]domain.Point, error) {
	return raster.AppendFill(buf, outline, bounds), nil
}

func (Rect) variant() {}
