// Package circle precomputes every integer offset within MaxRadius of the
// origin, sorted by distance. Walking the table in order visits cells in
// rings of increasing radius, so a neighbourhood search can stop as soon
// as it passes the radius it cares about.
package circle

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MaxRadius is the largest distance covered by the table.
const MaxRadius = 64

// ErrIndexOutOfRange is returned by OffsetAt for indices outside the table.
var ErrIndexOutOfRange = errors.New("offset index out of range")

// Offset is a displacement from the origin together with its Euclidean
// length, truncated to an integer.
type Offset struct {
	X, Y int
	Dist int
}

func newOffset(x, y int) Offset {
	return Offset{x, y, int(math.Sqrt(float64(x*x + y*y)))}
}

// sweepMargin widens the midpoint sweep past MaxRadius. The sweep of
// radius r is only complete up to distance r-2, so the outer rings
// of the table would otherwise be missing cells.
const sweepMargin = 2

var offsets = buildTable(MaxRadius)

// buildTable collects every offset with distance at most radius, removes
// repeats and sorts it by distance. Ties are ordered by (y, x) so the table
// is identical from run to run.
func buildTable(radius int) []Offset {
	seen := make(map[[2]int]struct{})
	var result []Offset
	for _, p := range fillDisk(radius + sweepMargin) {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		o := newOffset(p[0], p[1])
		if o.Dist <= radius {
			result = append(result, o)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Dist != b.Dist {
			return a.Dist < b.Dist
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return result
}

// fillDisk sweeps the midpoint circle of the given radius and, for every
// step of the sweep, emits the run of cells from the boundary back to the
// diagonal in all eight octants. Together the runs cover the whole disk.
// The origin is emitted first. Cells on the axes and diagonals are emitted
// more than once.
func fillDisk(radius int) [][2]int {
	var result [][2]int
	if radius <= 0 {
		return append(result, [2]int{0, 0})
	}

	x := radius
	z := 0
	err := 0

	result = append(result, [2]int{0, 0})

	for x >= z {
		if z > 0 {
			result = append(result,
				[2]int{z, z}, [2]int{-z, z}, [2]int{z, -z}, [2]int{-z, -z})
		}

		for i := x; i > z; i-- {
			result = append(result,
				[2]int{i, z}, [2]int{z, i}, [2]int{-i, z}, [2]int{-z, i},
				[2]int{i, -z}, [2]int{z, -i}, [2]int{-i, -z}, [2]int{-z, -i})
		}

		if err <= 0 {
			z += 1
			err += 2*z + 1
		}

		if err > 0 {
			x -= 1
			err -= 2*x + 1
		}
	}
	return result
}

// Count returns the number of offsets in the table.
func Count() int {
	return len(offsets)
}

// OffsetAt returns the offset at index i. Index 0 is always the origin.
func OffsetAt(i int) (Offset, error) {
	if i < 0 || i >= len(offsets) {
		return Offset{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(offsets))
	}
	return offsets[i], nil
}

// LastIndexAtRadius returns the exclusive end of the run of offsets whose
// distance is at most radius. Negative radii are treated as zero.
func LastIndexAtRadius(radius int) int {
	if radius < 0 {
		radius = 0
	}
	return sort.Search(len(offsets), func(i int) bool {
		return offsets[i].Dist > radius
	})
}

// Within returns the offsets whose distance is at most radius, nearest
// first. The slice aliases the shared table and must not be modified.
func Within(radius int) []Offset {
	end := LastIndexAtRadius(radius)
	return offsets[:end:end]
}
