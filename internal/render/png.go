package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jwulff/vaint-go/internal/domain"
	"golang.org/x/image/draw"
)

// Scale enlarges frame by an integer factor with nearest-neighbor sampling,
// keeping pixels crisp. A scale below 2 returns the plain conversion.
func Scale(frame *domain.Frame, scale int) *image.RGBA {
	src := frame.ToImage()
	if scale < 2 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, frame.Width*scale, frame.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes frame as PNG, enlarged by scale.
func WritePNG(w io.Writer, frame *domain.Frame, scale int) error {
	if err := png.Encode(w, Scale(frame, scale)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes frame to path as PNG, enlarged by scale.
func SavePNG(path string, frame *domain.Frame, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WritePNG(f, frame, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadPNG decodes a PNG into a frame.
func ReadPNG(r io.Reader) (*domain.Frame, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding png: %w", err)
	}
	return domain.FrameFromImage(img), nil
}
