// Package render turns shape objects into pixels: it composes outline and
// fill point layers and paints them into frames, PNG files and text previews.
package render

import (
	"errors"
	"math"

	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/jwulff/vaint-go/internal/shape"
)

// LayerKind distinguishes fill layers from outline layers.
type LayerKind int

const (
	LayerFill LayerKind = iota
	LayerStroke
)

func (k LayerKind) String() string {
	if k == LayerFill {
		return "fill"
	}
	return "stroke"
}

// Layer is a batch of same-colored points, the unit handed to a backend.
type Layer struct {
	Kind   LayerKind
	Shape  shape.Kind
	Color  domain.RGB
	Brush  int // side of the square stamped at each point
	Points []domain.Point
}

// Compose rasterizes objects into layers for a canvas of the given size.
//
// Every fill layer comes before every stroke layer, so outlines are never
// covered by a later shape's interior. Within each group layers keep the
// object order. Transparent objects produce nothing. Outline points are
// filtered to the canvas; fills are clipped to it.
func Compose(objects []shape.Object, size domain.Size) []Layer {
	log := Logger()
	var fills, strokes []Layer
	var outline []domain.Point

	for i, obj := range objects {
		style := obj.Style()
		if style.IsTransparent() {
			log.Debug("skipping transparent shape", "index", i, "shape", obj.Kind())
			continue
		}

		outline = obj.AppendOutline(outline[:0])

		if color, ok := style.Fill(); ok {
			points, err := obj.AppendFill(outline, size, nil)
			switch {
			case errors.Is(err, shape.ErrFillNotSupported):
				log.Debug("shape has no interior to fill", "index", i, "shape", obj.Kind())
			case len(points) == 0:
				log.Warn("no points to fill", "index", i, "shape", obj.Kind(), "center", obj.Center)
			default:
				fills = append(fills, Layer{Kind: LayerFill, Shape: obj.Kind(), Color: color, Brush: 1, Points: points})
			}
		}

		color, ok := style.Stroke()
		brush := brushSide(style.StrokeWidth())
		if !ok || brush == 0 {
			continue
		}
		visible := make([]domain.Point, 0, len(outline))
		for _, p := range outline {
			if size.Contains(p) {
				visible = append(visible, p)
			}
		}
		log.Debug("composed outline",
			"index", i, "shape", obj.Kind(), "points", len(outline), "visible", len(visible))
		if len(visible) > 0 {
			strokes = append(strokes, Layer{Kind: LayerStroke, Shape: obj.Kind(), Color: color, Brush: brush, Points: visible})
		}
	}

	return append(fills, strokes...)
}

// brushSide converts a stroke width to the side of a square brush. Any
// positive width draws at least one pixel.
func brushSide(width float32) int {
	if width <= 0 {
		return 0
	}
	return max(1, int(math.Round(float64(width))))
}
