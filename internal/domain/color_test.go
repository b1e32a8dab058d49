package domain

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRGB(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, uint8(255), rgb.R)
	assert.Equal(t, uint8(128), rgb.G)
	assert.Equal(t, uint8(64), rgb.B)
}

func TestRGBString(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, "RGB(255, 128, 64)", rgb.String())
}

func TestRGBFromHex(t *testing.T) {
	assert.Equal(t, NewRGB(255, 0, 127), RGBFromHex(0xFF007F))
	assert.Equal(t, NewRGB(0x33, 0x33, 0x33), DefaultStroke)
	assert.Equal(t, uint32(0xFF007F), RGBFromHex(0xFF007F).Hex())
}

func TestRGBFromHexPanicsOnAlpha(t *testing.T) {
	assert.PanicsWithValue(t, "domain: color 0xFFFFFFF0 is not in 0RGB 8-bit format", func() {
		RGBFromHex(0xFF_FF_FF_F0)
	})
}

func TestRGBImplementsColor(t *testing.T) {
	var c color.Color = NewRGB(10, 20, 30)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(10*0x101), r)
	assert.Equal(t, uint32(20*0x101), g)
	assert.Equal(t, uint32(30*0x101), b)
	assert.Equal(t, uint32(0xFFFF), a)

	assert.Equal(t, NewRGB(10, 20, 30), RGBFromColor(color.RGBA{R: 10, G: 20, B: 30, A: 255}))
}
