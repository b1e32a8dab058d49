package shape

import (
	"errors"
	"fmt"

	"github.com/jwulff/vaint-go/internal/domain"
)

// Variant is a Shape defined in this package: Circle, Ellipse, Rect or
// Segment. The set is closed so Object can dispatch on it exhaustively.
type Variant interface {
	Shape
	variant()
}

// Object is a positioned, styled shape. It owns its variant exclusively;
// the outline is always traced around Center.
type Object struct {
	v      Variant
	Center domain.Point
}

// NewObject places v at center. It panics if center is outside the
// coordinate range.
func NewObject(v Variant, center domain.Point) Object {
	return Object{v: v, Center: domain.NewPoint(center.X, center.Y)}
}

// NewSquareObject places a square of the given side at center.
func NewSquareObject(side uint32, center domain.Point) Object {
	return NewObject(NewSquare(side), center)
}

// NewRectangleObject places a width by height rectangle at center.
func NewRectangleObject(width, height uint32, center domain.Point) Object {
	return NewObject(NewRect(width, height), center)
}

// NewCircleObject places a circle at center.
func NewCircleObject(radius uint32, center domain.Point) Object {
	return NewObject(NewCircle(radius), center)
}

// NewEllipseObject places an ellipse at center. Equal radii produce a circle
// object instead.
func NewEllipseObject(radiusX, radiusY uint32, center domain.Point) Object {
	e, err := NewEllipse(radiusX, radiusY)
	var degenerate *DegenerateEllipseError
	if errors.As(err, &degenerate) {
		return NewObject(degenerate.Circle, center)
	}
	return NewObject(e, center)
}

// NewLineObject places a segment from-to, both relative to center.
func NewLineObject(from, to, center domain.Point) Object {
	return NewObject(NewSegment(from, to), center)
}

// Variant returns the held shape.
func (o Object) Variant() Variant { return o.v }

// Kind reports the held shape's kind.
func (o Object) Kind() Kind { return o.v.Kind() }

// Style returns the held shape's style.
func (o Object) Style() Style { return o.v.Style() }

// AppendOutlineAt appends the outline traced around center instead of o.Center.
func (o Object) AppendOutlineAt(buf []domain.Point, center domain.Point) []domain.Point {
	return o.v.AppendOutlineAt(buf, center)
}

// AppendOutline appends the outline traced around o.Center.
func (o Object) AppendOutline(buf []domain.Point) []domain.Point {
	return o.v.AppendOutlineAt(buf, o.Center)
}

// AppendFill appends the interior of outline, or returns ErrFillNotSupported
// for shapes without one.
func (o Object) AppendFill(outline []domain.Point, bounds domain.Size, buf []domain.Point) ([]domain.Point, error) {
	return o.v.AppendFill(outline, bounds, buf)
}

// SetStyle replaces the style of the held shape.
func (o *Object) SetStyle(style Style) {
	switch v := o.v.(type) {
	case Circle:
		o.v = v.WithStyle(style)
	case Ellipse:
		o.v = v.WithStyle(style)
	case Rect:
		o.v = v.WithStyle(style)
	case Segment:
		o.v = v.WithStyle(style)
	default:
		panic(fmt.Sprintf("shape: unknown variant %T", o.v))
	}
}

// UpdateStyle applies fn to the current style and stores the result:
//
//	obj.UpdateStyle(func(s Style) Style { return s.WithFillHex(0xFF0000) })
func (o *Object) UpdateStyle(fn func(Style) Style) {
	o.SetStyle(fn(o.Style()))
}

// String returns e.g. "Circle at (5, 5)".
func (o Object) String() string {
	return fmt.Sprintf("%s at %v", o.Kind(), o.Center)
}
