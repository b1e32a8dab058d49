package render

import (
	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/jwulff/vaint-go/internal/shape"
)

// Paint draws layers into frame in order. A brush wider than one pixel is
// stamped as a square around each point; for even sizes the extra pixel goes
// right and down. Pixels off the frame are ignored.
func Paint(frame *domain.Frame, layers []Layer) {
	for _, l := range layers {
		if l.Brush <= 1 {
			frame.Plot(l.Points, l.Color)
			continue
		}
		lo := -(l.Brush - 1) / 2
		hi := l.Brush / 2
		for _, p := range l.Points {
			for dy := lo; dy <= hi; dy++ {
				for dx := lo; dx <= hi; dx++ {
					frame.SetPixel(p.X+dx, p.Y+dy, l.Color)
				}
			}
		}
	}
}

// PaintSteps paints layers one at a time. fn sees the frame before the first
// layer and again after each layer, so a caller can record the scene
// building up. The frame is reused between calls; fn must copy what it keeps.
func PaintSteps(frame *domain.Frame, layers []Layer, fn func(step int, frame *domain.Frame)) {
	fn(0, frame)
	for i := range layers {
		Paint(frame, layers[i:i+1])
		fn(i+1, frame)
	}
}

// RenderScene composes objects and paints them over a background-filled
// frame of the given size.
func RenderScene(objects []shape.Object, size domain.Size, background domain.RGB) *domain.Frame {
	frame := domain.NewFrameWithColor(size.Width, size.Height, background)
	Paint(frame, Compose(objects, size))
	return frame
}
