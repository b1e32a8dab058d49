package shape

import "github.com/jwulff/vaint-go/internal/domain"

// Style describes how a shape is painted. It is a value type: the With
// helpers return a modified copy and never touch the receiver.
//
// An unset stroke color means the outline is invisible; an unset fill color
// means the interior is left unpainted.
type Style struct {
	stroke    domain.RGB
	fill      domain.RGB
	hasStroke bool
	hasFill   bool
	width     float32
}

// DefaultStyle returns the style new shapes start with: a dark gray 1px
// outline and no fill.
func DefaultStyle() Style {
	return Style{stroke: domain.DefaultStroke, hasStroke: true, width: 1}
}

// Stroke returns the outline color and whether one is set.
func (s Style) Stroke() (domain.RGB, bool) {
	return s.stroke, s.hasStroke
}

// Fill returns the interior color and whether one is set.
func (s Style) Fill() (domain.RGB, bool) {
	return s.fill, s.hasFill
}

// StrokeWidth returns the outline width in pixels.
func (s Style) StrokeWidth() float32 {
	return s.width
}

// WithStrokeColor sets the outline color.
func (s Style) WithStrokeColor(c domain.RGB) Style {
	s.stroke, s.hasStroke = c, true
	return s
}

// WithStrokeHex sets the outline color from a packed 0xRRGGBB value.
func (s Style) WithStrokeHex(v uint32) Style {
	return s.WithStrokeColor(domain.RGBFromHex(v))
}

// WithoutStroke clears the outline color.
func (s Style) WithoutStroke() Style {
	s.stroke, s.hasStroke = domain.RGB{}, false
	return s
}

// WithFillColor sets the interior color.
func (s Style) WithFillColor(c domain.RGB) Style {
	s.fill, s.hasFill = c, true
	return s
}

// WithFillHex sets the interior color from a packed 0xRRGGBB value.
func (s Style) WithFillHex(v uint32) Style {
	return s.WithFillColor(domain.RGBFromHex(v))
}

// WithoutFill clears the interior color.
func (s Style) WithoutFill() Style {
	s.fill, s.hasFill = domain.RGB{}, false
	return s
}

// WithStrokeWidth sets the outline width. Negative widths are clamped to 0.
func (s Style) WithStrokeWidth(w float32) Style {
	if w < 0 {
		w = 0
	}
	s.width = w
	return s
}

// IsTransparent reports whether painting with this style produces nothing:
// neither color is set, or only the stroke is set and its width is exactly 0.
func (s Style) IsTransparent() bool {
	switch {
	case !s.hasStroke && !s.hasFill:
		return true
	case s.hasStroke && !s.hasFill && s.width == 0:
		return true
	default:
		return false
	}
}
