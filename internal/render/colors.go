package render

import "github.com/jwulff/vaint-go/internal/domain"

// Luminance returns the perceived brightness of c in [0, 1] using the
// Rec. 601 weights.
func Luminance(c domain.RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
