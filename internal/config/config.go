// Package config loads scene files: the canvas, default style and list of
// shapes to draw, translated into shape objects.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/jwulff/vaint-go/internal/shape"
)

// Defaults for fields a scene file leaves out.
const (
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultStrokeWidth = 1.0
)

// Limits on untrusted scene files. Rasterizing costs time and memory in
// proportion to these, so a scene cannot ask for more than a renderer can
// hold.
const (
	MaxCanvasSide = 8192
	// MaxExtent bounds radii, sides and line endpoint offsets.
	MaxExtent = 1 << 18
)

// Canvas is the drawing surface size.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Size converts the canvas to a domain size.
func (c Canvas) Size() domain.Size {
	return domain.NewSize(c.Width, c.Height)
}

// Coord is an [x, y] pair.
type Coord [2]int

// Point converts the pair to a domain point.
func (c Coord) Point() domain.Point {
	return domain.Pt(c[0], c[1])
}

// Config is a parsed scene file.
type Config struct {
	Canvas      Canvas  `json:"canvas"`
	Background  Color   `json:"background"`
	Stroke      Color   `json:"stroke"`
	Fill        Color   `json:"fill"`
	StrokeWidth float32 `json:"stroke_width"`
	Shapes      []Entry `json:"shapes"`

	Display *Display `json:"display,omitempty"`
}

// Display controls how the scene is shown on a pixel panel.
type Display struct {
	// Brightness (0-100) is applied before the scene is sent.
	Brightness *int `json:"brightness,omitempty"`
	// Animate sends the scene building up one layer per frame.
	Animate bool `json:"animate,omitempty"`
	// FrameMillis is how long each animation frame stays on screen.
	FrameMillis int `json:"frame_ms,omitempty"`
}

// Delay returns FrameMillis as a duration.
func (d *Display) Delay() time.Duration {
	return time.Duration(d.FrameMillis) * time.Millisecond
}

// Entry describes one shape. Which dimension fields are required depends on
// Kind. Stroke, Fill and StrokeWidth override the scene defaults when set.
type Entry struct {
	Kind   string  `json:"kind"`
	Center *Coord  `json:"center,omitempty"`
	Radius *uint32 `json:"radius,omitempty"`
	RX     *uint32 `json:"rx,omitempty"`
	RY     *uint32 `json:"ry,omitempty"`
	Side   *uint32 `json:"side,omitempty"`
	Width  *uint32 `json:"width,omitempty"`
	Height *uint32 `json:"height,omitempty"`
	From   *Coord  `json:"from,omitempty"`
	To     *Coord  `json:"to,omitempty"`

	Stroke      *Color   `json:"stroke,omitempty"`
	Fill        *Color   `json:"fill,omitempty"`
	StrokeWidth *float32 `json:"stroke_width,omitempty"`
}

// ValidationError reports a bad field. Index is the position in Shapes, or
// -1 for scene-level fields.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("config: shapes[%d].%s: %s", e.Index, e.Field, e.Reason)
}

// New creates a Config with defaults and no shapes.
func New() *Config {
	return &Config{
		Canvas:      Canvas{Width: DefaultWidth, Height: DefaultHeight},
		Background:  RGBColor(domain.White),
		Stroke:      RGBColor(domain.DefaultStroke),
		Fill:        NoColor(),
		StrokeWidth: DefaultStrokeWidth,
	}
}

// Parse reads a JSON scene from r. Fields not present keep their defaults.
// Unknown fields are rejected so typos do not silently fall back.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Write encodes the config as indented JSON.
func (c *Config) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Validate checks the scene fields and every shape entry.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 {
		return &ValidationError{Index: -1, Field: "canvas.width", Reason: "must be positive"}
	}
	if c.Canvas.Height <= 0 {
		return &ValidationError{Index: -1, Field: "canvas.height", Reason: "must be positive"}
	}
	if c.Canvas.Width > MaxCanvasSide {
		return &ValidationError{Index: -1, Field: "canvas.width", Reason: fmt.Sprintf("must not exceed %d", MaxCanvasSide)}
	}
	if c.Canvas.Height > MaxCanvasSide {
		return &ValidationError{Index: -1, Field: "canvas.height", Reason: fmt.Sprintf("must not exceed %d", MaxCanvasSide)}
	}
	if c.StrokeWidth < 0 {
		return &ValidationError{Index: -1, Field: "stroke_width", Reason: "must not be negative"}
	}
	if d := c.Display; d != nil {
		if d.Brightness != nil && (*d.Brightness < 0 || *d.Brightness > 100) {
			return &ValidationError{Index: -1, Field: "display.brightness", Reason: "must be between 0 and 100"}
		}
		if d.FrameMillis < 0 {
			return &ValidationError{Index: -1, Field: "display.frame_ms", Reason: "must not be negative"}
		}
	}
	for i := range c.Shapes {
		if _, err := c.object(i); err != nil {
			return err
		}
	}
	return nil
}

// Style returns the scene default style.
func (c *Config) Style() shape.Style {
	return applyColors(shape.DefaultStyle(), c.Stroke, c.Fill).WithStrokeWidth(c.StrokeWidth)
}

// Objects translates the shape entries into shape objects, in file order.
func (c *Config) Objects() ([]shape.Object, error) {
	objects := make([]shape.Object, 0, len(c.Shapes))
	for i := range c.Shapes {
		obj, err := c.object(i)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func (c *Config) object(i int) (shape.Object, error) {
	e := c.Shapes[i]
	invalid := func(field, reason string) error {
		return &ValidationError{Index: i, Field: field, Reason: reason}
	}

	var center domain.Point
	if e.Center != nil {
		center = e.Center.Point()
	}
	if !center.InRange() {
		return shape.Object{}, invalid("center", "outside the 32-bit coordinate range")
	}

	type dim struct {
		name  string
		value *uint32
	}
	dims := func(fields ...dim) ([]uint32, error) {
		out := make([]uint32, len(fields))
		for k, f := range fields {
			if f.value == nil {
				return nil, invalid(f.name, "missing")
			}
			if *f.value > MaxExtent {
				return nil, invalid(f.name, fmt.Sprintf("must not exceed %d", MaxExtent))
			}
			if !domain.ExtentFits(center, *f.value) {
				return nil, invalid(f.name, "too large for the center")
			}
			out[k] = *f.value
		}
		return out, nil
	}

	var obj shape.Object
	switch strings.ToLower(e.Kind) {
	case "circle":
		d, err := dims(dim{"radius", e.Radius})
		if err != nil {
			return shape.Object{}, err
		}
		obj = shape.NewCircleObject(d[0], center)
	case "ellipse":
		d, err := dims(dim{"rx", e.RX}, dim{"ry", e.RY})
		if err != nil {
			return shape.Object{}, err
		}
		obj = shape.NewEllipseObject(d[0], d[1], center)
	case "square":
		d, err := dims(dim{"side", e.Side})
		if err != nil {
			return shape.Object{}, err
		}
		obj = shape.NewSquareObject(d[0], center)
	case "rectangle":
		d, err := dims(dim{"width", e.Width}, dim{"height", e.Height})
		if err != nil {
			return shape.Object{}, err
		}
		obj = shape.NewRectangleObject(d[0], d[1], center)
	case "line":
		if e.From == nil {
			return shape.Object{}, invalid("from", "missing")
		}
		if e.To == nil {
			return shape.Object{}, invalid("to", "missing")
		}
		from, to := e.From.Point(), e.To.Point()
		if !withinExtent(from) {
			return shape.Object{}, invalid("from", fmt.Sprintf("offset must not exceed %d", MaxExtent))
		}
		if !withinExtent(to) {
			return shape.Object{}, invalid("to", fmt.Sprintf("offset must not exceed %d", MaxExtent))
		}
		if !from.InRange() || !from.Add(center).InRange() {
			return shape.Object{}, invalid("from", "outside the 32-bit coordinate range")
		}
		if !to.InRange() || !to.Add(center).InRange() {
			return shape.Object{}, invalid("to", "outside the 32-bit coordinate range")
		}
		obj = shape.NewLineObject(from, to, center)
	case "":
		return shape.Object{}, invalid("kind", "missing")
	default:
		return shape.Object{}, invalid("kind", fmt.Sprintf("unknown shape kind %q", e.Kind))
	}

	if e.StrokeWidth != nil && *e.StrokeWidth < 0 {
		return shape.Object{}, invalid("stroke_width", "must not be negative")
	}
	obj.SetStyle(c.entryStyle(e))
	return obj, nil
}

func withinExtent(p domain.Point) bool {
	return max(p.X, -p.X) <= MaxExtent && max(p.Y, -p.Y) <= MaxExtent
}

func (c *Config) entryStyle(e Entry) shape.Style {
	stroke, fill, width := c.Stroke, c.Fill, c.StrokeWidth
	if e.Stroke != nil {
		stroke = *e.Stroke
	}
	if e.Fill != nil {
		fill = *e.Fill
	}
	if e.StrokeWidth != nil {
		width = *e.StrokeWidth
	}
	return applyColors(shape.DefaultStyle(), stroke, fill).WithStrokeWidth(width)
}

func applyColors(s shape.Style, stroke, fill Color) shape.Style {
	if stroke.None {
		s = s.WithoutStroke()
	} else {
		s = s.WithStrokeColor(stroke.RGB)
	}
	if fill.None {
		s = s.WithoutFill()
	} else {
		s = s.WithFillColor(fill.RGB)
	}
	return s
}
