package shape

import (
	"fmt"

	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/jwulff/vaint-go/internal/raster"
)

// Circle is a circle outline of a fixed radius.
type Circle struct {
	radius uint32
	style  Style
}

// NewCircle creates a circle with the default style. It panics if the radius
// does not fit the coordinate range.
func NewCircle(radius uint32) Circle {
	checkExtent("circle radius", radius)
	return Circle{radius: radius, style: DefaultStyle()}
}

// Radius returns the circle radius.
func (c Circle) Radius() uint32 { return c.radius }

// WithStyle returns a copy of the circle using style.
func (c Circle) WithStyle(style Style) Circle {
	c.style = style
	return c
}

func (c Circle) Kind() Kind { return KindCircle }

func (c Circle) Style() Style { return c.style }

func (c Circle) AppendOutlineAt(buf []domain.Point, center domain.Point) []domain.Point {
	domain.CheckExtent(center, c.radius)
	return raster.AppendCircle(buf, center, int(c.radius))
}

func (c Circle) AppendOutline(buf []domain.Point) []domain.Point {
	return c.AppendOutlineAt(buf, domain.Point{})
}

func (c Circle) AppendFill(outline []domain.Point, bounds domain.Size, buf []domain.Point) ([]domain.Point, error) {
	return raster.AppendFill(buf, outline, bounds), nil
}

func (Circle) variant() {}

// Ellipse is an axis-aligned ellipse with distinct radii.
type Ellipse struct {
	radiusX uint32
	radiusY uint32
	style   Style
}

// DegenerateEllipseError is returned by NewEllipse when both radii are equal.
// Circle holds the equivalent circle to use instead.
type DegenerateEllipseError struct {
	Circle Circle
}

func (e *DegenerateEllipseError) Error() string {
	return fmt.Sprintf("shape: ellipse with equal radii %d is a circle", e.Circle.radius)
}

// NewEllipse creates an ellipse with the default style. Equal radii yield a
// *DegenerateEllipseError carrying the circle with that radius. It panics if
// either radius does not fit the coordinate range.
func NewEllipse(radiusX, radiusY uint32) (Ellipse, error) {
	checkExtent("ellipse radius", radiusX)
	checkExtent("ellipse radius", radiusY)
	if radiusX == radiusY {
		return Ellipse{}, &DegenerateEllipseError{Circle: NewCircle(radiusX)}
	}
	return Ellipse{radiusX: radiusX, radiusY: radiusY, style: DefaultStyle()}, nil
}

// Radii returns the horizontal and vertical radius.
func (e Ellipse) Radii() (uint32, uint32) { return e.radiusX, e.radiusY }

// WithStyle returns a copy of the ellipse using style.
func (e Ellipse) WithStyle(style Style) Ellipse {
	e.style = style
	return e
}

func (e Ellipse) Kind() Kind { return KindEllipse }

func (e Ellipse) Style() Style { return e.style }

func (e Ellipse) AppendOutlineAt(buf []domain.Point, center domain.Point) []domain.Point {
	domain.CheckExtent(center, max(e.radiusX, e.radiusY))
	return raster.AppendEllipse(buf, center, int(e.radiusX), int(e.radiusY))
}

func (e Ellipse) AppendOutline(buf []domain.Point) []domain.Point {
	return e.AppendOutlineAt(buf, domain.Point{})
}

func (e Ellipse) AppendFill(outline []domain.Point, bounds domain.Size, buf []domain.Point) ([]domain.Point, error) {
	return raster.AppendFill(buf, outline, bounds), nil
}

func (Ellipse) variant() {}
