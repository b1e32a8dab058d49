package shape

import (
	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/jwulff/vaint-go/internal/raster"
)

// Segment is a straight line between two points given relative to the
// shape's center. It has no interior.
type Segment struct {
	from  domain.Point
	to    domain.Point
	style Style
}

// NewSegment creates a segment with the default style. It panics if either
// endpoint is outside the coordinate range.
func NewSegment(from, to domain.Point) Segment {
	return Segment{
		from:  domain.NewPoint(from.X, from.Y),
		to:    domain.NewPoint(to.X, to.Y),
		style: DefaultStyle(),
	}
}

// Endpoints returns the endpoints relative to the center.
func (s Segment) Endpoints() (domain.Point, domain.Point) { return s.from, s.to }

// WithStyle returns a copy of the segment using style.
func (s Segment) WithStyle(style Style) Segment {
	s.style = style
	return s
}

func (s Segment) Kind() Kind { return KindLine }

func (s Segment) Style() Style { return s.style }

func (s Segment) AppendOutlineAt(buf []domain.Point, center domain.Point) []domain.Point {
	p0, p1 := s.from.Add(center), s.to.Add(center)
	return raster.AppendLine(buf, domain.NewPoint(p0.X, p0.Y), domain.NewPoint(p1.X, p1.Y))
}

func (s Segment) AppendOutline(buf []domain.Point) []domain.Point {
	return s.AppendOutlineAt(buf, domain.Point{})
}

// AppendFill always fails: a segment encloses nothing.
func (s Segment) AppendFill(_ []domain.Point, _ domain.Size, buf []domain.Point) ([]domain.Point, error) {
	return buf, ErrFillNotSupported
}

func (Segment) variant() {}
