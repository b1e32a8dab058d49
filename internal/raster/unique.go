package raster

import "github.com/jwulff/vaint-go/internal/domain"

// Unique removes repeated points in place, keeping the first occurrence of
// each, and returns the shortened slice.
func Unique(points []domain.Point) []domain.Point {
	seen := make(map[domain.Point]struct{}, len(points))
	out := points[:0]
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
