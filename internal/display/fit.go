package display

import (
	"image"

	"github.com/jwulff/vaint-go/internal/domain"
	"golang.org/x/image/draw"
)

// Fit scales frame into a size x size square, preserving the aspect ratio
// and centering it on background. Frames that already match are returned
// unchanged.
func Fit(frame *domain.Frame, size int, background domain.RGB) *domain.Frame {
	if frame.Width == size && frame.Height == size {
		return frame
	}

	dst := domain.NewFrameWithColor(size, size, background).ToImage()
	if frame.Width == 0 || frame.Height == 0 {
		return domain.FrameFromImage(dst)
	}

	w, h := size, size
	if frame.Width > frame.Height {
		h = max(1, size*frame.Height/frame.Width)
	} else {
		w = max(1, size*frame.Width/frame.Height)
	}
	x0, y0 := (size-w)/2, (size-h)/2
	rect := image.Rect(x0, y0, x0+w, y0+h)

	src := frame.ToImage()
	draw.ApproxBiLinear.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return domain.FrameFromImage(dst)
}

// Snapshot returns a panel-sized copy of frame that never shares pixels with
// it, for callers that keep painting into frame afterwards.
func Snapshot(frame *domain.Frame, background domain.RGB) *domain.Frame {
	fitted := Fit(frame, DeviceSize, background)
	if fitted == frame {
		return frame.Clone()
	}
	return fitted
}
