package bluenoise

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/vram-io/dtk/pkg/coord"
)

// Summary describes the spread of a tile's points.
type Summary struct {
	Count   int
	Density float64 // points per cell

	// Nearest-neighbour distances, with wraparound. All zero when the tile
	// has fewer than two points.
	MinNN    float64
	MaxNN    float64
	MeanNN   float64
	StdDevNN float64
	MedianNN float64
}

// Analyze measures nearest-neighbour distances between the points of n.
// It compares every pair, so it is meant for inspecting tiles rather than
// for hot paths.
func Analyze(n *Noise) Summary {
	points := n.Points()
	s := Summary{
		Count:   len(points),
		Density: float64(len(points)) / (float64(n.size) * float64(n.size)),
	}
	if len(points) < 2 {
		return s
	}

	nn := NearestDistances(n)

	sample := (&stats.Sample{Xs: nn}).Sort()
	s.MinNN, s.MaxNN = sample.Bounds()
	s.MeanNN = sample.Mean()
	s.StdDevNN = sample.StdDev()
	s.MedianNN = sample.Quantile(0.5)
	return s
}

// NearestDistances returns, for each point of n.Points(), the wrapped
// distance to its nearest other point. A lone point gets zero.
func NearestDistances(n *Noise) []float64 {
	points := n.Points()
	torus := coord.Torus{Size: n.size}
	result := make([]float64, len(points))
	if len(points) < 2 {
		return result
	}
	for i, p := range points {
		best := math.MaxInt
		for j, q := range points {
			if i == j {
				continue
			}
			if d := torus.Dist2(p, q); d < best {
				best = d
			}
		}
		result[i] = math.Sqrt(float64(best))
	}
	return result
}
