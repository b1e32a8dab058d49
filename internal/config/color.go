package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jwulff/vaint-go/internal/domain"
	"golang.org/x/image/colornames"
)

// Color is a color as written in a scene file. It accepts a CSS color name
// ("khaki"), "#RRGGBB", an [r, g, b] array, or a packed 0xRRGGBB integer.
// The strings "none" and "transparent" produce a Color with None set, which
// disables the stroke or fill it is assigned to.
type Color struct {
	RGB  domain.RGB
	None bool
}

// RGBColor wraps c.
func RGBColor(c domain.RGB) Color {
	return Color{RGB: c}
}

// NoColor is the disabled color.
func NoColor() Color {
	return Color{None: true}
}

// ParseColor parses the string forms of Color.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "none" || name == "transparent":
		return NoColor(), nil
	case strings.HasPrefix(name, "#"):
		hex := name[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGBColor(domain.RGBFromHex(uint32(v))), nil
	}

	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", s)
	}
	return RGBColor(domain.NewRGB(c.R, c.G, c.B)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty color")
	}
	if string(data) == "null" {
		return nil // keep the current value
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil

	case '[':
		var rgb []int
		if err := json.Unmarshal(data, &rgb); err != nil {
			return fmt.Errorf("invalid color array: %w", err)
		}
		if len(rgb) != 3 {
			return fmt.Errorf("color array needs 3 channels, got %d", len(rgb))
		}
		for _, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("color channel %d out of range 0-255", v)
			}
		}
		*c = RGBColor(domain.NewRGB(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])))
		return nil

	default:
		var v int64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("invalid color %s", data)
		}
		if v < 0 || v > 0xFFFFFF {
			return fmt.Errorf("packed color 0x%X is not 0xRRGGBB", v)
		}
		*c = RGBColor(domain.RGBFromHex(uint32(v)))
		return nil
	}
}

// MarshalJSON writes "none" or "#RRGGBB".
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c Color) String() string {
	if c.None {
		return "none"
	}
	return fmt.Sprintf("#%06X", c.RGB.Hex())
}
