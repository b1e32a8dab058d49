package domain

import (
	"fmt"
	"image/color"
)

// BytesPerPixel is the number of bytes per pixel (RGB).
const BytesPerPixel = 3

// RGB represents an RGB color with 8-bit channels. There is no alpha channel;
// transparency is expressed by leaving a style color unset.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = NewRGB(0, 0, 0)
	White = NewRGB(255, 255, 255)

	// DefaultStroke is the outline color a new shape starts with.
	DefaultStroke = RGBFromHex(0x333333)
)

// NewRGB creates a new RGB color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// RGBFromHex converts a packed 0xRRGGBB value to a color.
//
// The top byte must be zero. Passing an ARGB/RGBA-packed value violates the
// caller contract and panics.
func RGBFromHex(value uint32) RGB {
	if value>>24 != 0 {
		panic(fmt.Sprintf("domain: color 0x%08X is not in 0RGB 8-bit format", value))
	}
	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}
}

// Hex returns the packed 0xRRGGBB value of the color.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// String returns a string representation of the RGB color.
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBFromColor converts any color.Color, dropping alpha.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}
