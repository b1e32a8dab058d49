package render

import (
	"bufio"
	"image"
	"io"

	"github.com/jwulff/vaint-go/internal/domain"
	"golang.org/x/image/draw"
)

// asciiRamp runs from dark to light.
const asciiRamp = "@%#*+=-:. "

// WriteASCII prints a text preview of frame that is cols characters wide.
// Terminal cells are about twice as tall as wide, so each row covers two
// frame rows' worth of height.
func WriteASCII(w io.Writer, frame *domain.Frame, cols int) error {
	if cols <= 0 || frame.Width == 0 || frame.Height == 0 {
		return nil
	}
	cols = min(cols, frame.Width)
	rows := max(1, frame.Height*cols/frame.Width/2)

	src := frame.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	small := domain.FrameFromImage(dst)

	bw := bufio.NewWriter(w)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			bw.WriteByte(shade(*small.GetPixel(x, y)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func shade(c domain.RGB) byte {
	i := int(Luminance(c)*float64(len(asciiRamp)-1) + 0.5)
	return asciiRamp[i]
}
