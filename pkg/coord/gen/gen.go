package gen

import (
	"github.com/vram-io/dtk/pkg/coord"
)

// Generator provides an interface for yielding successive points.
type Generator interface {
	Next() *coord.Point
}

type gridRangeState struct {
	next coord.Point
	size int
}

// NewGridRange returns a Generator that yields every cell of a size x size
// tile in (y, x) order.
func NewGridRange(size int) Generator {
	return &gridRangeState{
		next: coord.Point{X: 0, Y: 0},
		size: size,
	}
}

func (g *gridRangeState) Next() *coord.Point {
	if g.size <= 0 || g.next.Y >= g.size {
		return nil
	}
	result := g.next
	nextPoint := &g.next
	nextPoint.X++
	if nextPoint.X == g.size {
		nextPoint.X = 0
		nextPoint.Y++
	}
	return &result
}

type sliceState struct {
	idx    uint
	points []coord.Point
}

// NewSlice returns a Generator that yields all points in the slice.
func NewSlice(points []coord.Point) Generator {
	return &sliceState{0, points}
}

func (g *sliceState) Next() *coord.Point {
	if g.idx >= uint(len(g.points)) {
		return nil
	}
	result := g.points[g.idx]
	g.idx++
	return &result
}
