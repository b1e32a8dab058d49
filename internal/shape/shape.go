// Package shape defines the drawable shapes and the styled, positioned
// objects built from them.
package shape

import (
	"errors"
	"fmt"

	"github.com/jwulff/vaint-go/internal/domain"
)

// ErrFillNotSupported is returned by AppendFill for shapes that have no
// interior to fill. An empty fill of a shape that does support filling
// returns no points and a nil error instead.
var ErrFillNotSupported = errors.New("shape: fill not supported")

// Kind identifies a shape variant.
type Kind int

const (
	KindSquare Kind = iota
	KindRectangle
	KindCircle
	KindEllipse
	KindLine
)

var kindNames = map[Kind]string{
	KindSquare:    "Square",
	KindRectangle: "Rectangle",
	KindCircle:    "Circle",
	KindEllipse:   "Ellipse",
	KindLine:      "Line",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is the capability set every drawable shape provides.
type Shape interface {
	// Kind reports the variant.
	Kind() Kind
	// AppendOutlineAt appends the outline pixels with the shape centered on center.
	AppendOutlineAt(buf []domain.Point, center domain.Point) []domain.Point
	// AppendOutline appends the outline pixels at the shape's default origin.
	AppendOutline(buf []domain.Point) []domain.Point
	// Style returns the current style.
	Style() Style
	// AppendFill appends the interior pixels enclosed by outline, clipped to
	// bounds, or returns ErrFillNotSupported.
	AppendFill(outline []domain.Point, bounds domain.Size, buf []domain.Point) ([]domain.Point, error)
}

// maxExtent is the largest size or radius a shape accepts. Rasterizers reach
// center±2*extent, which must stay within 32 bits.
const maxExtent = domain.MaxCoord / 2

func checkExtent(what string, v uint32) {
	if v > maxExtent {
		panic(fmt.Sprintf("shape: %s %d exceeds the 32-bit coordinate range", what, v))
	}
}
