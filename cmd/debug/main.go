package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/jwulff/vaint-go/internal/config"
	"github.com/jwulff/vaint-go/internal/display"
	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/jwulff/vaint-go/internal/raster"
	"github.com/jwulff/vaint-go/internal/render"
	"github.com/jwulff/vaint-go/internal/shape"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  debug <scene.json> [IP]  - Dump rasterization details, optionally send")
		fmt.Println("  debug lines [length]     - Compare DDA and Bresenham around a full turn")
		os.Exit(1)
	}

	if os.Args[1] == "lines" {
		length := 20
		if len(os.Args) > 2 {
			n, err := strconv.Atoi(os.Args[2])
			if err != nil || n < 1 {
				fmt.Printf("Error: invalid length %q\n", os.Args[2])
				os.Exit(1)
			}
			length = n
		}
		sweepLines(length)
		return
	}

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	objects, err := cfg.Objects()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	size := cfg.Canvas.Size()

	fmt.Printf("Canvas: %dx%d, %d shapes\n\n", size.Width, size.Height, len(objects))
	for i, obj := range objects {
		outline := obj.AppendOutline(nil)
		total := len(outline)
		unique := len(raster.Unique(append(outline[:0:0], outline...)))
		fill, fillErr := obj.AppendFill(outline, size, nil)

		fmt.Printf("  %d. %s\n", i+1, obj)
		fmt.Printf("     outline: %d points (%d unique)\n", total, unique)
		if seg, ok := obj.Variant().(shape.Segment); ok {
			from, to := seg.Endpoints()
			diff := compareLines(from.Add(obj.Center), to.Add(obj.Center))
			fmt.Printf("     bresenham: %d of %d points differ\n", diff, total)
		}
		if fillErr != nil {
			fmt.Printf("     fill: %v\n", fillErr)
		} else {
			fmt.Printf("     fill: %d points\n", len(fill))
		}
	}

	layers := render.Compose(objects, size)
	fmt.Printf("\nLayers: %d\n", len(layers))
	for _, l := range layers {
		fmt.Printf("  %-6s %-9s %v brush=%d points=%d\n", l.Kind, l.Shape, l.Color, l.Brush, len(l.Points))
	}

	background := cfg.Background.RGB
	frame := render.RenderScene(objects, size, background)
	fitted := display.Fit(frame, display.DeviceSize, background)
	fmt.Println("\nPanel frame:")
	fmt.Printf("  Scene: %dx%d -> %dx%d\n", frame.Width, frame.Height, fitted.Width, fitted.Height)
	fmt.Printf("  Pixel data: %d bytes\n", len(fitted.Pixels))
	if cfg.Display != nil {
		fmt.Printf("  Animate: %v (%d frames, %v each)\n", cfg.Display.Animate, len(layers)+1, cfg.Display.Delay())
		if cfg.Display.Brightness != nil {
			fmt.Printf("  Brightness: %d\n", *cfg.Display.Brightness)
		}
	}

	if len(os.Args) < 3 {
		return
	}

	client := display.NewClient(os.Args[2])
	client.Background = background
	fmt.Printf("\nSending to %s...\n", client.Endpoint())

	ctx, cancel := context.WithTimeout(context.Background(), display.DefaultTimeout)
	defer cancel()
	if err := client.Present(ctx, frame); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Sent.")
}

// compareLines counts the positions where DDA and Bresenham pick different
// pixels for the same segment.
func compareLines(p0, p1 domain.Point) int {
	dda := raster.AppendLine(nil, p0, p1)
	bres := raster.AppendBresenham(nil, p0, p1)
	diff := max(len(dda), len(bres)) - min(len(dda), len(bres))
	for i := range min(len(dda), len(bres)) {
		if dda[i] != bres[i] {
			diff++
		}
	}
	return diff
}

func sweepLines(length int) {
	fmt.Printf("Segments of length %d from the origin:\n\n", length)
	fmt.Println("  angle  points  differ")
	worst, total := 0, 0
	for deg := 0; deg < 360; deg += 15 {
		rad := float64(deg) * math.Pi / 180
		end := domain.Pt(
			int(math.Round(float64(length)*math.Cos(rad))),
			int(math.Round(float64(length)*math.Sin(rad))),
		)
		n := len(raster.AppendLine(nil, domain.Point{}, end))
		diff := compareLines(domain.Point{}, end)
		fmt.Printf("  %5d  %6d  %6d\n", deg, n, diff)
		worst = max(worst, diff)
		total += diff
	}
	fmt.Printf("\nTotal differing points: %d (worst angle: %d)\n", total, worst)
}
